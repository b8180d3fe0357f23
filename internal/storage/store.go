package storage

// Store persists the aggregate snapshot as an opaque encoded blob. The
// tracker owns encoding and repair; stores only move bytes.
type Store interface {
	// Load returns the last saved snapshot, or nil when none exists.
	Load() ([]byte, error)
	Save(snapshot []byte) error
	Close() error
}
