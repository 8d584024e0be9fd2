package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StateStore is the client-local persistence layer: the ambient session
// state and one selection record per session id, each held as a small JSON
// blob in a SQLite database under the state directory.
type StateStore struct {
	db   *sql.DB
	path string
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS selections (
	session_id TEXT PRIMARY KEY,
	indices    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS client_state (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	payload TEXT NOT NULL
);`

// OpenStateStore opens (creating if needed) the state store at path.
func OpenStateStore(path string) (*StateStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Err: fmt.Errorf("schema setup failed: %w", err)}
	}

	return &StateStore{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *StateStore) Close() error {
	return s.db.Close()
}

// Path returns the database path.
func (s *StateStore) Path() string {
	return s.path
}

// SaveSelection persists the selected row indices for a session.
func (s *StateStore) SaveSelection(sessionID string, indices []int) error {
	if indices == nil {
		indices = []int{}
	}
	data, err := json.Marshal(indices)
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}

	_, err = s.db.Exec(
		`INSERT INTO selections (session_id, indices) VALUES (?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET indices = excluded.indices`,
		sessionID, string(data))
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

// LoadSelection returns the persisted selection indices for a session.
// A missing or malformed record degrades to an empty selection; it never
// fails the caller.
func (s *StateStore) LoadSelection(sessionID string) []int {
	var raw string
	err := s.db.QueryRow(
		`SELECT indices FROM selections WHERE session_id = ?`, sessionID).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			LogDebug("Failed to read selection record for %s: %v", sessionID, err)
		}
		return nil
	}

	var indices []int
	if err := json.Unmarshal([]byte(raw), &indices); err != nil {
		LogDebug("Malformed selection record for %s, using empty selection: %v", sessionID, err)
		return nil
	}
	return indices
}

// SaveState persists the ambient session state.
func (s *StateStore) SaveState(state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}

	_, err = s.db.Exec(
		`INSERT INTO client_state (id, payload) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`,
		string(data))
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

// LoadState returns the persisted ambient session state. A missing or
// malformed record degrades to the empty new-chat baseline.
func (s *StateStore) LoadState() *SessionState {
	var raw string
	err := s.db.QueryRow(`SELECT payload FROM client_state WHERE id = 1`).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			LogDebug("Failed to read client state: %v", err)
		}
		return &SessionState{}
	}

	var state SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		LogDebug("Malformed client state, starting clean: %v", err)
		return &SessionState{}
	}
	return &state
}
