package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/wsdindex/storage"
	"github.com/revelaction/wsdindex/storage/filesystem"
	"github.com/revelaction/wsdindex/storage/sqlite/zombiezen"
)

// readSnapshot loads the index at path: a SQLite file, a directory with an
// index.db, or a directory with the .bin files.
func readSnapshot(path string) (storage.Snapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("index not found: %s", path)
	}

	dbPath := path
	if info.IsDir() {
		dbPath = filepath.Join(path, zombiezen.DBFile)
		if _, err := os.Stat(dbPath); err != nil {
			return filesystem.NewIndexStore(path).Read()
		}
	}

	pool, err := zombiezen.Open(dbPath, zombiezen.Existing)
	if err != nil {
		return storage.Snapshot{}, err
	}
	defer pool.Close()

	return zombiezen.NewIndexStore(pool).Read()
}
