package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/wsdindex/index"
	sent "github.com/revelaction/wsdindex/sentence"
	"github.com/revelaction/wsdindex/storage"
)

// IndexStore keeps a snapshot in the sentences, sensekey_index and
// synset_index tables.
type IndexStore struct {
	pool *sqlitex.Pool
}

var _ storage.IndexWriter = (*IndexStore)(nil)
var _ storage.IndexReader = (*IndexStore)(nil)

func NewIndexStore(pool *sqlitex.Pool) *IndexStore {
	return &IndexStore{pool: pool}
}

// Write inserts the snapshot in a single transaction. The pool must come
// from Open with Create.
func (h *IndexStore) Write(s storage.Snapshot) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	for _, id := range s.Instances.Ids() {
		data, marshalErr := json.Marshal(s.Instances[id])
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO sentences (id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{id, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence %s: %w", id, err)
		}
	}

	if err = writeIndex(conn, "sensekey_index", "sensekey", s.SenseKeys); err != nil {
		return err
	}

	return writeIndex(conn, "synset_index", "synset", s.Synsets)
}

func writeIndex(conn *sqlite.Conn, table, column string, x *index.Index) error {
	query := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s, sentence_id) VALUES (?, ?)", table, column)

	for _, key := range x.Keys() {
		for _, id := range x.Values(key) {
			err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
				Args: []interface{}{key, id},
			})
			if err != nil {
				return fmt.Errorf("failed to insert %s %s: %w", column, key, err)
			}
		}
	}

	return nil
}

func (h *IndexStore) Read() (storage.Snapshot, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Snapshot{}, err
	}
	defer h.pool.Put(conn)

	s := storage.Snapshot{Instances: sent.Instances{}}

	err = sqlitex.Execute(conn, "SELECT id, data FROM sentences", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var sentence sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(1)), &sentence); err != nil {
				return err
			}
			s.Instances[stmt.ColumnText(0)] = sentence
			return nil
		},
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	if s.SenseKeys, err = readIndex(conn, "sensekey_index", "sensekey"); err != nil {
		return storage.Snapshot{}, err
	}

	if s.Synsets, err = readIndex(conn, "synset_index", "synset"); err != nil {
		return storage.Snapshot{}, err
	}

	return s, nil
}

func readIndex(conn *sqlite.Conn, table, column string) (*index.Index, error) {
	x := index.New()
	query := fmt.Sprintf("SELECT %s, sentence_id FROM %s", column, table)

	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			x.Add(stmt.ColumnText(0), stmt.ColumnText(1))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return x, nil
}
