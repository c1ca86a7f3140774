// Package gogit inspects checkouts with go-git, without spawning git.
package gogit

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// RepositoryInspector implements repositories.RepositoryInspector using go-git.
type RepositoryInspector struct{}

var _ repositories.RepositoryInspector = (*RepositoryInspector)(nil)

// NewRepositoryInspector creates a new RepositoryInspector.
func NewRepositoryInspector() *RepositoryInspector {
	return &RepositoryInspector{}
}

// Inspect opens the repository containing dir and describes its HEAD, remote and worktree.
// A repository without commits reports an empty branch.
func (it *RepositoryInspector) Inspect(
	_ context.Context,
	dir, remoteName string,
) (entities.RepositoryState, error) {
	//nolint:exhaustruct // only parent-directory discovery is needed
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return entities.RepositoryState{}, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return entities.RepositoryState{}, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return entities.RepositoryState{}, fmt.Errorf("failed to read worktree status: %w", err)
	}

	branch, err := headBranch(repo)
	if err != nil {
		return entities.RepositoryState{}, err
	}

	return entities.RepositoryState{
		Root:      worktree.Filesystem.Root(),
		Branch:    branch,
		RemoteURL: remoteURL(repo, remoteName),
		Clean:     status.IsClean(),
	}, nil
}

func headBranch(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "HEAD", nil
	}
	return head.Name().Short(), nil
}

func remoteURL(repo *git.Repository, remoteName string) string {
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
