//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// SpyCommandRunner implements repositories.CommandRunner as a scripted spy.
// Responses are keyed by the space-joined arguments (e.g. "status --porcelain");
// unscripted commands succeed with empty output. Check requests with a non-zero
// scripted code fail with an *entities.ExitError, like the real runner.
type SpyCommandRunner struct {
	Responses map[string]entities.CommandResult

	// spy: every request received, in order
	Calls []entities.CommandRequest
}

var _ repositories.CommandRunner = (*SpyCommandRunner)(nil)

// NewSpyCommandRunner creates a spy with no scripted responses.
func NewSpyCommandRunner() *SpyCommandRunner {
	return &SpyCommandRunner{Responses: make(map[string]entities.CommandResult)}
}

// On scripts the result returned for the given argument line.
func (r *SpyCommandRunner) On(args string, code int, output string) *SpyCommandRunner {
	r.Responses[args] = entities.CommandResult{Code: code, Output: output}
	return r
}

func (r *SpyCommandRunner) Run(
	_ context.Context,
	request entities.CommandRequest,
) (entities.CommandResult, error) {
	r.Calls = append(r.Calls, request)
	key := strings.Join(request.Args, " ")
	result := r.Responses[key]
	if request.Check && result.Code != 0 {
		return result, &entities.ExitError{Code: result.Code, Command: "git " + key}
	}
	return result, nil
}

// CalledArgs returns the argument line of every call, in order.
func (r *SpyCommandRunner) CalledArgs() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		lines = append(lines, strings.Join(call.Args, " "))
	}
	return lines
}

// IndexOf returns the position of the first call with the given argument line, or -1.
func (r *SpyCommandRunner) IndexOf(args string) int {
	for i, line := range r.CalledArgs() {
		if line == args {
			return i
		}
	}
	return -1
}

// CountPrefix returns how many calls start with the given argument prefix.
func (r *SpyCommandRunner) CountPrefix(prefix string) int {
	count := 0
	for _, line := range r.CalledArgs() {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}

// Request returns the first request with the given argument line.
func (r *SpyCommandRunner) Request(args string) (entities.CommandRequest, bool) {
	if i := r.IndexOf(args); i >= 0 {
		return r.Calls[i], true
	}
	return entities.CommandRequest{}, false
}
