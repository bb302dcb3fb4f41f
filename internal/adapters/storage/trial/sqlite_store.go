package trial

import (
	"context"
	"fmt"
	"time"

	"ironcore/internal/adapters/storage"
	domain "ironcore/internal/domain/trial"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new trial Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Request.
// PRE: value has been validated; value.ID is unique
// POST: row inserted into trial_request
func (s *SQLiteStore) Save(ctx context.Context, value domain.Request) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trial_request (id, goal, name, phone, email, experience, training_time, requested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		value.ID, value.Goal, value.Name, value.Phone, value.Email,
		value.Experience, value.TrainingTime, value.RequestedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("trial save: %w", err)
	}
	return nil
}

// ListRecent returns the newest requests first.
// PRE: limit > 0
// POST: Returns at most limit requests
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Request, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal, name, phone, email, experience, training_time, requested_at
		FROM trial_request ORDER BY requested_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("trial list: %w", err)
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		var r domain.Request
		var requestedAt string
		if err := rows.Scan(&r.ID, &r.Goal, &r.Name, &r.Phone, &r.Email, &r.Experience, &r.TrainingTime, &requestedAt); err != nil {
			return nil, fmt.Errorf("trial scan: %w", err)
		}
		r.RequestedAt, _ = time.Parse(time.RFC3339, requestedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored requests.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trial_request").Scan(&n); err != nil {
		return 0, fmt.Errorf("trial count: %w", err)
	}
	return n, nil
}
