package zombiezen

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// DBFile is the name of the SQLite file inside the output directory.
const DBFile = "index.db"

//go:embed sql/index.sql
var indexSQL string

// Mode selects how Open treats the database file.
type Mode int

const (
	// Create creates the file if missing and applies the index tables.
	Create Mode = iota
	// Existing opens a file written by a previous convert.
	Existing
)

// Open returns a single connection pool on the index database at dbPath.
// The index is written in one transaction and read in one pass, so more
// connections are never taken.
func Open(dbPath string, mode Mode) (*sqlitex.Pool, error) {
	flags := sqlite.OpenReadWrite | sqlite.OpenURI
	if mode == Create {
		flags |= sqlite.OpenCreate | sqlite.OpenWAL
	} else if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("index db not found: %w", err)
	}

	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		Flags:    flags,
		PoolSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open index db %s: %w", dbPath, err)
	}

	if mode == Create {
		if err := applySchema(pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

func applySchema(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, indexSQL, nil); err != nil {
		return fmt.Errorf("failed to create index tables: %w", err)
	}
	return nil
}
