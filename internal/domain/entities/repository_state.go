package entities

// RepositoryState is a read-only snapshot of a checkout.
type RepositoryState struct {
	Root      string
	Branch    string
	RemoteURL string
	Clean     bool
}
