// Package shell runs the git executable as a child process.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// startFailureCode is reported when the child process could not be started.
const startFailureCode = 1

// CommandRunner executes git with a structured argument list (no shell),
// merging stdout and stderr and mirroring them line by line as they arrive.
type CommandRunner struct {
	binary string // used when a request does not name one
	out    io.Writer
}

var _ repositories.CommandRunner = (*CommandRunner)(nil)

// NewCommandRunner creates a CommandRunner for binary that mirrors output to out.
func NewCommandRunner(binary string, out io.Writer) *CommandRunner {
	return &CommandRunner{binary: binary, out: out}
}

// NewGitCommandRunner creates a CommandRunner for "git" that mirrors output to stdout.
func NewGitCommandRunner() *CommandRunner {
	return NewCommandRunner("git", os.Stdout)
}

// Run executes the request to completion. See repositories.CommandRunner.
func (it *CommandRunner) Run(
	ctx context.Context,
	request entities.CommandRequest,
) (entities.CommandResult, error) {
	binary := it.binary
	if request.Binary != "" {
		binary = request.Binary
	}
	rendered := shellquote.Join(append([]string{binary}, request.Args...)...)
	logger.Debugf("Running: %s", rendered)

	code, output, err := it.execute(ctx, binary, request)
	if err != nil {
		logger.Errorf("Error running command %s: %v", rendered, err)
		if request.Check {
			return entities.CommandResult{Code: startFailureCode},
				&entities.ExitError{Code: startFailureCode, Command: rendered}
		}
		return entities.CommandResult{Code: startFailureCode}, nil
	}

	result := entities.CommandResult{Code: code, Output: output}
	if request.Check && code != 0 {
		logger.Errorf("‼️ Command failed: %s", rendered)
		return result, &entities.ExitError{Code: code, Command: rendered}
	}
	return result, nil
}

// execute returns a non-nil error only when the process could not be started.
func (it *CommandRunner) execute(
	ctx context.Context,
	binary string,
	request entities.CommandRequest,
) (int, string, error) {
	//nolint:gosec // the binary comes from settings and arguments are never shell-interpreted
	cmd := exec.CommandContext(ctx, binary, request.Args...)
	if request.Dir != "" {
		cmd.Dir = request.Dir
	}

	reader, writer := io.Pipe()
	cmd.Stdout = writer
	cmd.Stderr = writer

	if err := cmd.Start(); err != nil {
		_ = writer.Close()
		_ = reader.Close()
		return 0, "", err
	}

	waitErr := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		// Wait returns after both stdout and stderr were copied into the pipe
		_ = writer.Close()
		waitErr <- err
	}()

	var captured strings.Builder
	buffered := bufio.NewReader(reader)
	for {
		line, readErr := buffered.ReadString('\n')
		if line != "" {
			captured.WriteString(line)
			if !request.Silent {
				_, _ = io.WriteString(it.out, line)
			}
		}
		if readErr != nil {
			break
		}
	}

	return exitCode(<-waitErr), captured.String(), nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	// killed by a signal or failed while waiting
	return startFailureCode
}
