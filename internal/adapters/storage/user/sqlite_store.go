package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ironcore/internal/adapters/storage"
	domain "ironcore/internal/domain/user"
)

const dateLayout = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new user Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a User by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error wrapping domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, role, status, joined_on FROM app_user WHERE id = ?", id)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("user get: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a User by email, ignoring case.
// PRE: email is non-empty
// POST: Returns the entity or an error wrapping domain.ErrNotFound
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, role, status, joined_on FROM app_user WHERE lower(email) = lower(?)", strings.TrimSpace(email))
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrNotFound, email)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("user get by email: %w", err)
	}
	return u, nil
}

// Save persists a User, replacing any row with the same ID.
// PRE: value has been validated; email is unique across users
// POST: row upserted into app_user
func (s *SQLiteStore) Save(ctx context.Context, value domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_user (id, name, email, role, status, joined_on)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			role = excluded.role,
			status = excluded.status,
			joined_on = excluded.joined_on`,
		value.ID, value.Name, value.Email, value.Role, value.Status, value.Joined.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("user save: %w", err)
	}
	return nil
}

// Delete removes a User.
// PRE: id is non-empty
// POST: row removed; returns an error wrapping domain.ErrNotFound if nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM app_user WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("user delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

// List returns users matching filter, newest first.
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.User, error) {
	where, args := filter.where()
	query := "SELECT id, name, email, role, status, joined_on FROM app_user" + where + filter.orderBy()
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("user list: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("user scan: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Count returns the number of users matching filter, ignoring Limit/Offset.
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := filter.where()
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_user"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("user count: %w", err)
	}
	return n, nil
}

func (f ListFilter) where() (string, []any) {
	var clauses []string
	var args []any
	if q := strings.TrimSpace(f.Search); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		clauses = append(clauses, "(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\')")
		args = append(args, pattern, pattern)
	}
	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, f.Status)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

var sortSQL = map[string]string{
	SortName:   "name COLLATE NOCASE",
	SortEmail:  "email",
	SortRole:   "role",
	SortStatus: "status",
	SortJoined: "joined_on",
}

func (f ListFilter) orderBy() string {
	col, ok := sortSQL[f.Sort]
	if !ok {
		return " ORDER BY joined_on DESC, name ASC"
	}
	if f.Desc {
		return " ORDER BY " + col + " DESC, id ASC"
	}
	return " ORDER BY " + col + " ASC, id ASC"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanUser(scan func(dest ...any) error) (domain.User, error) {
	var u domain.User
	var joined string
	if err := scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &joined); err != nil {
		return domain.User{}, err
	}
	d, err := time.Parse(dateLayout, joined)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse joined_on %q: %w", joined, err)
	}
	u.Joined = d
	return u, nil
}
