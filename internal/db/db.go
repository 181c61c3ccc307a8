package db

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// DB wraps the database connection. It is the sole gateway to on-disk state:
// opened once at process start and closed once at shutdown by whoever owns it.
type DB struct {
	*sql.DB
}

// Open opens the store at the given path, creating the parent directory and
// the schema if absent. Foreign keys are enabled so deleting a task cascades
// to its tag links.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	sqldb, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := sqldb.Exec(schema); err != nil {
		sqldb.Close()
		return nil, err
	}

	return &DB{sqldb}, nil
}

// New opens the store at the default location
func New() (*DB, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(dir, "taskmaster.db"))
}

// DataDir returns the application data directory, creating it if needed
func DataDir() (string, error) {
	// Use XDG data directory or fallback to home directory
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "taskmaster")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}
