// sqlite.go implements the disk-backed KV on SQLite.
//
// Separated so this is the only file in the package that imports the
// driver. The store enforces its own total size ceiling independently of
// the history manager's per-file cap: once stored values exceed the
// ceiling, the oldest rows by insertion order are culled until the store
// fits. A culled snapshot surfaces to the manager as a plain Get miss.
//
// WAL mode with a busy timeout supports the single-writer/multiple-reader
// pattern of repeated short-lived editor processes sharing one history
// directory. Synchronous NORMAL is safe under WAL and avoids an fsync per
// commit; losing the last snapshot on an OS crash costs one undo step.

package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultStoreCeiling caps the total bytes of stored snapshot values.
const DefaultStoreCeiling = 512 * 1024 * 1024 // 512 MiB

// SQLiteKV is a disk-backed KV with FIFO size-based culling.
type SQLiteKV struct {
	db      *sql.DB
	ceiling int64
}

var _ KV = (*SQLiteKV)(nil)

// OpenSQLite opens (creating if needed) the KV database inside dir.
// ceiling bounds the total stored bytes; <= 0 applies DefaultStoreCeiling.
func OpenSQLite(dir string, ceiling int64) (*SQLiteKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`PRAGMA synchronous=NORMAL`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configuring history database: %w", err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			seq   INTEGER PRIMARY KEY AUTOINCREMENT,
			key   TEXT NOT NULL UNIQUE,
			value BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_kv_key ON kv(key);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	if ceiling <= 0 {
		ceiling = DefaultStoreCeiling
	}
	return &SQLiteKV{db: db, ceiling: ceiling}, nil
}

func (s *SQLiteKV) Put(key string, value []byte) error {
	// Replacing re-inserts with a fresh seq, so an updated key counts as
	// newest for culling purposes.
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, seq=(SELECT IFNULL(MAX(seq),0)+1 FROM kv)`,
		key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return s.cull()
}

func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Keys(prefix string) ([]string, error) {
	pattern := likeEscape(prefix) + "%"
	rows, err := s.db.Query(`SELECT key FROM kv WHERE key LIKE ? ESCAPE '\'`, pattern)
	if err != nil {
		return nil, fmt.Errorf("list keys %s: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLiteKV) Close() error { return s.db.Close() }

// cull deletes oldest-inserted rows until stored values fit the ceiling.
// Index rows are small; in practice culling removes stale snapshots.
func (s *SQLiteKV) cull() error {
	for {
		var total sql.NullInt64
		if err := s.db.QueryRow(`SELECT SUM(LENGTH(value)) FROM kv`).Scan(&total); err != nil {
			return fmt.Errorf("sizing history store: %w", err)
		}
		if !total.Valid || total.Int64 <= s.ceiling {
			return nil
		}
		res, err := s.db.Exec(`DELETE FROM kv WHERE seq = (SELECT MIN(seq) FROM kv)`)
		if err != nil {
			return fmt.Errorf("culling history store: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
	}
}

// likeEscape escapes LIKE metacharacters so a prefix matches literally.
func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
