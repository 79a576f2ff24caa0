// Package history implements the disk-backed bounded undo history.
//
// Every successful mutating edit stores a full pre-edit snapshot keyed by
// the edited path and a monotonic counter. Undo pops the newest snapshot.
// Snapshots per path are capped, evicting strictly oldest-first by creation
// order. The counter is persisted alongside the snapshots so keys stay
// unique across process restarts - counters are never reused, even after
// eviction.
//
// Persistence sits behind the narrow KV interface so the engine is
// swappable: SQLiteKV for production, MemoryKV for tests.
package history

// KV is the persistence contract the history manager needs. Implementations
// must be safe for single-writer/multiple-reader access from repeated
// short-lived process instances against the same storage.
type KV interface {
	// Put stores value under key, replacing any existing value.
	Put(key string, value []byte) error

	// Get returns the value for key. The bool reports whether the key was
	// present; a missing key is not an error.
	Get(key string) ([]byte, bool, error)

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string) error

	// Keys returns all keys beginning with prefix, in unspecified order.
	Keys(prefix string) ([]string, error)

	// Close releases any underlying resources.
	Close() error
}
