package dataset

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"agridata/internal/normalize"
)

// Store persists datasets and chat messages in a local SQLite
// database. Dataset reads are hot-path (every question rebuilds the
// prompt from them); message writes are best-effort and never block
// answering.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	log *zap.Logger
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the schema exists.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer keeps the pure-Go driver out of SQLITE_BUSY
	// territory under concurrent sessions.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, log: log}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS datasets (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		source_url  TEXT NOT NULL DEFAULT '',
		fields      TEXT NOT NULL DEFAULT '{}',
		data        TEXT NOT NULL DEFAULT '[]',
		created_at  TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id             TEXT PRIMARY KEY,
		session_id     TEXT NOT NULL,
		role           TEXT NOT NULL,
		content        TEXT NOT NULL,
		citations      TEXT NOT NULL DEFAULT '[]',
		visualizations TEXT NOT NULL DEFAULT 'null',
		created_at     TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_chat_messages_session
		ON chat_messages(session_id, created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Count returns the number of stored datasets.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM datasets").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count datasets: %w", err)
	}
	return n, nil
}

// Insert stores a dataset. An empty ID is assigned.
func (s *Store) Insert(d Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	fields, err := json.Marshal(d.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}
	data, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO datasets (id, name, description, source_url, fields, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Description, d.SourceURL, string(fields), string(data), d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}
	return nil
}

// List returns all datasets ordered by creation time.
func (s *Store) List() ([]Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, name, description, source_url, fields, data, created_at
		 FROM datasets ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var d Dataset
		var fields, data string
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.SourceURL, &fields, &data, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &d.Fields); err != nil {
			s.log.Warn("skipping malformed dataset fields", zap.String("id", d.ID), zap.Error(err))
			d.Fields = map[string]string{}
		}
		if err := json.Unmarshal([]byte(data), &d.Data); err != nil {
			s.log.Warn("skipping malformed dataset rows", zap.String("id", d.ID), zap.Error(err))
			d.Data = nil
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SaveMessage persists one chat turn. Callers treat failures as
// non-fatal; the error is returned so they can log it.
func (s *Store) SaveMessage(m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.Citations == nil {
		m.Citations = []normalize.Citation{}
	}

	citations, err := json.Marshal(m.Citations)
	if err != nil {
		return fmt.Errorf("failed to marshal citations: %w", err)
	}
	visualizations, err := json.Marshal(m.Visualizations)
	if err != nil {
		return fmt.Errorf("failed to marshal visualizations: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO chat_messages (id, session_id, role, content, citations, visualizations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.SessionID, m.Role, m.Content, string(citations), string(visualizations), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// Messages returns all messages for a session in chronological order.
func (s *Store) Messages(sessionID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, session_id, role, content, citations, visualizations, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY created_at, id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var citations, visualizations string
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &citations, &visualizations, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if err := json.Unmarshal([]byte(citations), &m.Citations); err != nil {
			m.Citations = nil
		}
		if err := json.Unmarshal([]byte(visualizations), &m.Visualizations); err != nil {
			m.Visualizations = nil
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
