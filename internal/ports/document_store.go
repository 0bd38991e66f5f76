package ports

import "context"

// DocumentStore persists the forecast cache document of a directory. The
// document is always read and written as a whole.
type DocumentStore interface {
	// Load returns the raw document, creating an empty JSON object first
	// when none exists yet.
	Load(ctx context.Context, dir string) ([]byte, error)
	// Save replaces the whole document.
	Save(ctx context.Context, dir string, data []byte) error
	// Ping checks that the backing storage is reachable.
	Ping(ctx context.Context) error
	// Name identifies the backend in logs and health output.
	Name() string
}
