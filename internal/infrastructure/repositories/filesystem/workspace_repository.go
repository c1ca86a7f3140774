package filesystem

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// filePermissions is used only when a file is created; existing files keep their mode.
const filePermissions = 0o644

// WorkspaceRepository reads and writes working-tree files through an afero filesystem.
type WorkspaceRepository struct {
	fs afero.Fs
}

var _ repositories.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository creates a WorkspaceRepository on top of fs.
func NewWorkspaceRepository(fs afero.Fs) *WorkspaceRepository {
	return &WorkspaceRepository{fs: fs}
}

// NewOsWorkspaceRepository creates a WorkspaceRepository on the real filesystem.
func NewOsWorkspaceRepository() *WorkspaceRepository {
	return NewWorkspaceRepository(afero.NewOsFs())
}

func (it *WorkspaceRepository) Exists(path string) (bool, error) {
	exists, err := afero.Exists(it.fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return exists, nil
}

func (it *WorkspaceRepository) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(it.fs, path)
}

// WriteFile replaces the content of path, preserving the mode of an existing file.
func (it *WorkspaceRepository) WriteFile(path string, data []byte) error {
	var mode os.FileMode = filePermissions
	if info, err := it.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return afero.WriteFile(it.fs, path, data, mode)
}
