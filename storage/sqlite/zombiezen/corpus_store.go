package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexistat/lexistat/corpus"
	"github.com/lexistat/lexistat/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// CorpusStore persists annotated corpus files in a SQLite database. Each
// response's sentences are stored as one JSON row, keyed by its file.
type CorpusStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

func NewCorpusStore(pool *sqlitex.Pool) *CorpusStore {
	return &CorpusStore{pool: pool}
}

func (h *CorpusStore) Names() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM files", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return corpus.SortNames(names), nil
}

func (h *CorpusStore) File(name string) (corpus.File, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return corpus.File{}, err
	}
	defer h.pool.Put(conn)

	f := corpus.File{Name: name}
	fileID := int64(-1)

	err = sqlitex.Execute(conn, "SELECT id, prompt_type, response_type FROM files WHERE name = ? LIMIT 1", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			fileID = stmt.ColumnInt64(0)
			f.PromptType = stmt.ColumnText(1)
			f.ResponseType = stmt.ColumnText(2)
			return nil
		},
	})
	if err != nil {
		return corpus.File{}, err
	}
	if fileID < 0 {
		return corpus.File{}, fmt.Errorf("file not found: %s", name)
	}

	err = sqlitex.Execute(conn, "SELECT resp_id, data FROM responses WHERE file_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{fileID},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			r := corpus.Response{Id: stmt.ColumnText(0)}
			if err := json.Unmarshal([]byte(stmt.ColumnText(1)), &r.Sentences); err != nil {
				return err
			}
			f.Responses = append(f.Responses, r)
			return nil
		},
	})
	if err != nil {
		return corpus.File{}, err
	}

	return f, nil
}

func (h *CorpusStore) Write(f corpus.File) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO files (name, prompt_type, response_type) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{f.Name, f.PromptType, f.ResponseType},
	})
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}
	fileID := conn.LastInsertRowID()

	for _, r := range f.Responses {
		data, marshalErr := json.Marshal(r.Sentences)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO responses (file_id, resp_id, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{fileID, r.Id, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert response: %w", err)
		}
	}

	return nil
}
