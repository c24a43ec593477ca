// Package prefs persists user preferences (theme, accent) in a small SQLite
// key/value table. Project data never goes through here: the catalog is
// in-memory by design and resets to fixtures on restart, so preferences are
// the only durable state this application keeps.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Well-known preference keys.
const (
	KeyTheme  = "theme"
	KeyAccent = "accent"
)

type Prefs struct {
	db   *sql.DB
	lock *flock.Flock
}

// Open opens (or creates) the preference database at dbPath and runs
// migrations. A sibling lock file guards against a second running instance
// writing the same database.
func Open(dbPath string) (*Prefs, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create prefs directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire prefs lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another instance is running (lock held on %s)", lock.Path())
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("open prefs database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			lock.Unlock()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	pr := &Prefs{db: db, lock: lock}
	if err := pr.migrate(); err != nil {
		db.Close()
		lock.Unlock()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return pr, nil
}

// OpenMemory creates an in-memory preference store for testing. No lock file
// is involved.
func OpenMemory() (*Prefs, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open prefs database: %w", err)
	}
	db.SetMaxOpenConns(1)
	pr := &Prefs{db: db}
	if err := pr.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return pr, nil
}

func (p *Prefs) Close() error {
	if p.lock != nil {
		p.lock.Unlock()
	}
	return p.db.Close()
}

func (p *Prefs) migrate() error {
	var version int
	if err := p.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		const ddl = `
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		INSERT OR IGNORE INTO prefs (key, value) VALUES
			('theme',  'midnight'),
			('accent', '#6C63FF');
		`
		if _, err := p.db.Exec(ddl); err != nil {
			return err
		}
	}

	_, err := p.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// Get returns the stored value for key, or fallback when unset.
func (p *Prefs) Get(key, fallback string) string {
	var value string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

// Set stores the value for key, replacing any previous value.
func (p *Prefs) Set(key, value string) error {
	_, err := p.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// All returns every stored preference, ordered by key.
func (p *Prefs) All() (map[string]string, error) {
	rows, err := p.db.Query(`SELECT key, value FROM prefs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list prefs: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// DefaultPath returns ~/.config/plank/plank.db.
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "plank", "plank.db"), nil
}
