package backend

import (
	"context"

	"sobi/internal/store"
)

// CleanupFunc releases the resources a backend holds (connections, files).
type CleanupFunc func() error

// BackendResult contains the store instance and optional cleanup function.
type BackendResult struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory creates expense stores based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// Owner key every store operation is scoped to.
	OwnerID string

	// SQLite specific
	SQLiteDBPath string

	// Firestore specific
	FirestoreProjectID       string
	FirestoreCredentialsFile string
}

// BackendType selects which expense store implementation to run.
type BackendType string

const (
	FirestoreBackend BackendType = "firestore"
	SQLiteBackend    BackendType = "sqlite"
	MemoryBackend    BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case FirestoreBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
