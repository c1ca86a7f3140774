package entities

import "fmt"

// CommandRequest describes a single invocation of the git executable.
type CommandRequest struct {
	Binary string   // executable to run; empty means the runner's default
	Args   []string // arguments passed to the binary, never shell-interpreted
	Dir    string   // working directory; empty means the current process directory
	Silent bool     // when false, the merged output is mirrored line by line to the console
	Check  bool     // when true, a non-zero exit code aborts the whole invocation
}

// CommandResult is the outcome of a finished command.
type CommandResult struct {
	Code   int
	Output string // merged stdout and stderr, in arrival order
}

// Succeeded reports whether the command exited with code zero.
func (r CommandResult) Succeeded() bool {
	return r.Code == 0
}

// ExitError asks the entry point to terminate the invocation with Code.
// Flows return it instead of exiting the process themselves.
type ExitError struct {
	Code    int
	Command string // rendered command that caused the exit, if any
}

func (e *ExitError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return fmt.Sprintf("command %q failed with exit status %d", e.Command, e.Code)
}

// NewExitError creates an ExitError that is not tied to a specific command.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}
