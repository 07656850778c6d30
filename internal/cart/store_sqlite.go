package cart

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore persists the cart record in a local SQLite database, one row
// per storage key.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
		CREATE TABLE IF NOT EXISTS cart_records (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() ([]Item, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM cart_records WHERE key = ?", storageKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec storedCart
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, err
	}
	return rec.Items, nil
}

func (s *SQLiteStore) Save(items []Item) error {
	raw, err := json.Marshal(storedCart{Items: items})
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO cart_records (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		storageKey, string(raw),
	)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
