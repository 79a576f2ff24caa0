// history.go implements the per-file bounded undo stack over a KV store.
//
// Key scheme (one namespace per edited path, prefixed by a blake2b hash of
// the absolute path so separators in paths cannot collide):
//
//	idx:<hash>      JSON index: monotonic counter + ordered live entries
//	ent:<hash>:<n>  full content snapshot for counter value n
//
// The index is rewritten on every change, so the counter survives process
// restarts against the same storage directory and resets only on Clear.

package history

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// DefaultMaxPerFile is the per-path snapshot cap applied when none is
// configured. Oldest entries are evicted first once the cap is exceeded.
const DefaultMaxPerFile = 5

// Manager is the undo history for edited files. It is not safe for
// concurrent use by multiple goroutines; the editor runs operations
// synchronously.
type Manager struct {
	kv         KV
	maxPerFile int
}

// index is the persisted per-path bookkeeping record.
type index struct {
	Counter uint64   `json:"counter"` // next counter value to allocate, never reused
	Entries []uint64 `json:"entries"` // live entry counters, oldest first
}

// NewManager wraps kv with per-path bounded undo semantics.
// maxPerFile <= 0 applies DefaultMaxPerFile.
func NewManager(kv KV, maxPerFile int) *Manager {
	if maxPerFile <= 0 {
		maxPerFile = DefaultMaxPerFile
	}
	return &Manager{kv: kv, maxPerFile: maxPerFile}
}

// Add stores a pre-edit snapshot of content for path, evicting the oldest
// entry when the per-path cap is exceeded. Eviction is strictly FIFO by
// creation order, never by access recency.
func (m *Manager) Add(path, content string) error {
	idx, err := m.loadIndex(path)
	if err != nil {
		return err
	}

	n := idx.Counter
	idx.Counter++

	if err := m.kv.Put(entryKey(path, n), []byte(content)); err != nil {
		return fmt.Errorf("storing snapshot for %s: %w", path, err)
	}
	idx.Entries = append(idx.Entries, n)

	for len(idx.Entries) > m.maxPerFile {
		oldest := idx.Entries[0]
		idx.Entries = idx.Entries[1:]
		if err := m.kv.Delete(entryKey(path, oldest)); err != nil {
			return fmt.Errorf("evicting snapshot for %s: %w", path, err)
		}
	}

	return m.saveIndex(path, idx)
}

// GetLast pops and returns the most recent snapshot for path. The bool
// reports whether a snapshot was found. A snapshot the index believes in
// but the store has culled counts as "no history", not an error.
func (m *Manager) GetLast(path string) (string, bool, error) {
	idx, err := m.loadIndex(path)
	if err != nil {
		return "", false, err
	}
	if len(idx.Entries) == 0 {
		return "", false, nil
	}

	newest := idx.Entries[len(idx.Entries)-1]
	idx.Entries = idx.Entries[:len(idx.Entries)-1]

	value, ok, err := m.kv.Get(entryKey(path, newest))
	if err != nil {
		return "", false, err
	}
	if err := m.kv.Delete(entryKey(path, newest)); err != nil {
		return "", false, err
	}
	if err := m.saveIndex(path, idx); err != nil {
		return "", false, err
	}
	if !ok {
		// The store culled this snapshot under its size ceiling.
		return "", false, nil
	}
	return string(value), true, nil
}

// Clear removes all history for path, including the counter.
func (m *Manager) Clear(path string) error {
	keys, err := m.kv.Keys("ent:" + pathHash(path) + ":")
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := m.kv.Delete(k); err != nil {
			return err
		}
	}
	return m.kv.Delete(indexKey(path))
}

// Entries returns the live snapshot counters for path, oldest first,
// along with the stored size of each snapshot. Used for inspection only.
func (m *Manager) Entries(path string) ([]Entry, error) {
	idx, err := m.loadIndex(path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(idx.Entries))
	for _, n := range idx.Entries {
		value, ok, err := m.kv.Get(entryKey(path, n))
		if err != nil {
			return nil, err
		}
		e := Entry{Key: entryKey(path, n), Sequence: n}
		if ok {
			e.Size = len(value)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Entry describes one live snapshot for inspection.
type Entry struct {
	Key      string `json:"key"`
	Sequence uint64 `json:"sequence"`
	Size     int    `json:"size"`
}

func (m *Manager) loadIndex(path string) (index, error) {
	value, ok, err := m.kv.Get(indexKey(path))
	if err != nil {
		return index{}, fmt.Errorf("loading history index for %s: %w", path, err)
	}
	if !ok {
		return index{}, nil
	}
	var idx index
	if err := json.Unmarshal(value, &idx); err != nil {
		// Corrupt index: start fresh rather than wedging all edits to path.
		return index{}, nil
	}
	return idx, nil
}

func (m *Manager) saveIndex(path string, idx index) error {
	value, err := json.Marshal(idx)
	if err != nil {
		return err
	}
	if err := m.kv.Put(indexKey(path), value); err != nil {
		return fmt.Errorf("saving history index for %s: %w", path, err)
	}
	return nil
}

func indexKey(path string) string { return "idx:" + pathHash(path) }

func entryKey(path string, n uint64) string {
	return fmt.Sprintf("ent:%s:%d", pathHash(path), n)
}

// pathHash gives each path a fixed-width collision-resistant namespace.
func pathHash(path string) string {
	sum := blake2b.Sum256([]byte(path))
	return hex.EncodeToString(sum[:8])
}
