package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gitsync/internal/domain/repositories"
	"github.com/rios0rios0/gitsync/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/gitsync/internal/infrastructure/repositories/gogit"
	"github.com/rios0rios0/gitsync/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Git binary runner streaming to stdout
	if err := container.Provide(func() domainRepos.CommandRunner {
		return shell.NewGitCommandRunner()
	}); err != nil {
		return err
	}

	// Read-only inspection through go-git
	if err := container.Provide(func() domainRepos.RepositoryInspector {
		return gogit.NewRepositoryInspector()
	}); err != nil {
		return err
	}

	// Working tree files on the OS filesystem
	if err := container.Provide(func() domainRepos.WorkspaceRepository {
		return filesystem.NewOsWorkspaceRepository()
	}); err != nil {
		return err
	}

	return nil
}
