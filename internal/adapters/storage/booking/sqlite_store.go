package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ironcore/internal/adapters/storage"
	domain "ironcore/internal/domain/booking"
)

const dateLayout = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new booking Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Booking by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error wrapping domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Booking, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, plan, amount_minor, currency, status, booked_on FROM booking WHERE id = ?", id)
	b, err := scanBooking(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Booking{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking get: %w", err)
	}
	return b, nil
}

// Save persists a Booking, replacing any row with the same ID.
// PRE: value has been validated
// POST: row upserted into booking
func (s *SQLiteStore) Save(ctx context.Context, value domain.Booking) error {
	currency := value.Currency
	if currency == "" {
		currency = domain.CurrencyINR
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO booking (id, name, plan, amount_minor, currency, status, booked_on)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			plan = excluded.plan,
			amount_minor = excluded.amount_minor,
			currency = excluded.currency,
			status = excluded.status,
			booked_on = excluded.booked_on`,
		value.ID, value.Name, value.Plan, value.AmountMinor, currency, value.Status,
		value.Date.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("booking save: %w", err)
	}
	return nil
}

// Delete removes a Booking.
// PRE: id is non-empty
// POST: row removed; returns an error wrapping domain.ErrNotFound if nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM booking WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("booking delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

// List returns bookings matching filter, newest first.
// PRE: filter.Limit >= 0, filter.Offset >= 0
// POST: Returns at most Limit rows (all rows when Limit is 0)
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Booking, error) {
	where, args := filter.where()
	query := "SELECT id, name, plan, amount_minor, currency, status, booked_on FROM booking" +
		where + filter.orderBy()
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("booking list: %w", err)
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("booking scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Count returns the number of bookings matching filter, ignoring Limit/Offset.
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := filter.where()
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM booking"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("booking count: %w", err)
	}
	return n, nil
}

func (f ListFilter) where() (string, []any) {
	var clauses []string
	var args []any
	if q := strings.TrimSpace(f.Search); q != "" {
		clauses = append(clauses, "LOWER(name) LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(strings.ToLower(q))+"%")
	}
	if f.Plan != "" && f.Plan != domain.PlanAll {
		clauses = append(clauses, "plan = ?")
		args = append(args, f.Plan)
	}
	if !f.Since.IsZero() {
		clauses = append(clauses, "booked_on >= ?")
		args = append(args, f.Since.Format(dateLayout))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

var sortSQL = map[string]string{
	SortDate:   "booked_on",
	SortName:   "name COLLATE NOCASE",
	SortPlan:   "plan",
	SortAmount: "amount_minor",
	SortStatus: "status",
}

func (f ListFilter) orderBy() string {
	col, ok := sortSQL[f.Sort]
	if !ok {
		return " ORDER BY booked_on DESC, name ASC"
	}
	dir := " ASC"
	if f.Desc {
		dir = " DESC"
	}
	return " ORDER BY " + col + dir + ", id ASC"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanBooking(scan func(dest ...any) error) (domain.Booking, error) {
	var b domain.Booking
	var bookedOn string
	if err := scan(&b.ID, &b.Name, &b.Plan, &b.AmountMinor, &b.Currency, &b.Status, &bookedOn); err != nil {
		return domain.Booking{}, err
	}
	d, err := time.Parse(dateLayout, bookedOn)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse booked_on %q: %w", bookedOn, err)
	}
	b.Date = d
	return b, nil
}
