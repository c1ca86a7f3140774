package repositories

// WorkspaceRepository gives the flows access to files inside the working tree.
type WorkspaceRepository interface {
	Exists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}
