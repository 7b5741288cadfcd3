package blob

import (
	"database/sql"
	"fmt"
)

// SQLiteStore keeps blobs in a single-table SQLite database. The caller is
// expected to have registered an sqlite3 driver (the cmd entry points blank-
// import github.com/ncruces/go-sqlite3/driver and .../embed).
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a blob database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open blob db: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore wraps an existing database handle.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`
        CREATE TABLE IF NOT EXISTS layouts (
            key        TEXT PRIMARY KEY,
            value      BLOB NOT NULL,
            updated_at TEXT NOT NULL DEFAULT (datetime('now'))
        )
    `)
	if err != nil {
		return fmt.Errorf("init blob schema: %w", err)
	}
	return nil
}

// Save upserts the blob for key.
func (s *SQLiteStore) Save(key string, data []byte) error {
	_, err := s.db.Exec(`
        INSERT INTO layouts (key, value, updated_at)
        VALUES (?, ?, datetime('now'))
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `, key, data)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Load fetches the blob for key; absent keys are reported via ok=false.
func (s *SQLiteStore) Load(key string) ([]byte, bool, error) {
	row := s.db.QueryRow(`SELECT value FROM layouts WHERE key = ?`, key)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %q: %w", key, err)
	}
	return data, true, nil
}

// Delete removes the blob for key. Absent keys are a no-op.
func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM layouts WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys.
func (s *SQLiteStore) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM layouts ORDER BY key`)
	if err != nil {
		return nil, err
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

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
