package message

import (
	"context"
	"fmt"
	"time"

	"ironcore/internal/adapters/storage"
	domain "ironcore/internal/domain/message"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new message Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Message.
// PRE: value has been validated; value.ID is unique
// POST: row inserted into contact_message
func (s *SQLiteStore) Save(ctx context.Context, value domain.Message) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_message (id, name, email, subject, body, received_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		value.ID, value.Name, value.Email, value.Subject, value.Body,
		value.ReceivedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("message save: %w", err)
	}
	return nil
}

// ListRecent returns the newest messages first.
// PRE: limit > 0
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, body, received_at
		FROM contact_message ORDER BY received_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("message list: %w", err)
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		var receivedAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &receivedAt); err != nil {
			return nil, fmt.Errorf("message scan: %w", err)
		}
		m.ReceivedAt, _ = time.Parse(time.RFC3339, receivedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Count returns the number of stored messages.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_message").Scan(&n); err != nil {
		return 0, fmt.Errorf("message count: %w", err)
	}
	return n, nil
}
