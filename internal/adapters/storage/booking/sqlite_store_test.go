package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"ironcore/internal/adapters/storage"
	domain "ironcore/internal/domain/booking"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteStore(db)
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func seed(t *testing.T, s *SQLiteStore) {
	t.Helper()
	rows := []domain.Booking{
		{ID: "b1", Name: "Rahul Sharma", Plan: domain.PlanOneYear, AmountMinor: 12_000_00, Status: domain.StatusPaid, Date: day("2026-10-15")},
		{ID: "b2", Name: "Priya Singh", Plan: domain.PlanThreeMonth, AmountMinor: 3_500_00, Status: domain.StatusPending, Date: day("2026-10-14")},
		{ID: "b3", Name: "Amit Kumar", Plan: domain.PlanOneMonth, AmountMinor: 1_500_00, Status: domain.StatusPaid, Date: day("2026-10-12")},
		{ID: "b4", Name: "Sneha Rao", Plan: domain.PlanOneYear, AmountMinor: 12_000_00, Status: domain.StatusFailed, Date: day("2026-09-30")},
	}
	for _, b := range rows {
		if err := s.Save(context.Background(), b); err != nil {
			t.Fatalf("save %s: %v", b.ID, err)
		}
	}
}

// TestSQLiteStore_SaveAndGet verifies a round trip including the date column.
func TestSQLiteStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	got, err := s.GetByID(context.Background(), "b2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Priya Singh" || got.Plan != domain.PlanThreeMonth || got.AmountMinor != 3_500_00 {
		t.Errorf("unexpected booking: %+v", got)
	}
	if got.Currency != domain.CurrencyINR {
		t.Errorf("currency = %q, want INR default", got.Currency)
	}
	if !got.Date.Equal(day("2026-10-14")) {
		t.Errorf("date = %v", got.Date)
	}
}

// TestSQLiteStore_SaveUpserts verifies Save replaces an existing row.
func TestSQLiteStore_SaveUpserts(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	ctx := context.Background()

	b, _ := s.GetByID(ctx, "b2")
	b.Status = domain.StatusPaid
	if err := s.Save(ctx, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := s.GetByID(ctx, "b2")
	if got.Status != domain.StatusPaid {
		t.Errorf("status = %q, want Paid", got.Status)
	}
	n, _ := s.Count(ctx, ListFilter{})
	if n != 4 {
		t.Errorf("count = %d, want 4", n)
	}
}

// TestSQLiteStore_NotFound verifies missing rows map to domain.ErrNotFound.
func TestSQLiteStore_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetByID(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

// TestSQLiteStore_ListFilters verifies search, plan filter, date bound and ordering.
func TestSQLiteStore_ListFilters(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{"all newest first", ListFilter{}, []string{"b1", "b2", "b3", "b4"}},
		{"plan All", ListFilter{Plan: domain.PlanAll}, []string{"b1", "b2", "b3", "b4"}},
		{"plan filter", ListFilter{Plan: domain.PlanOneYear}, []string{"b1", "b4"}},
		{"search case-insensitive", ListFilter{Search: "SHARMA"}, []string{"b1"}},
		{"search and plan", ListFilter{Search: "a", Plan: domain.PlanOneMonth}, []string{"b3"}},
		{"since", ListFilter{Since: day("2026-10-13")}, []string{"b1", "b2"}},
		{"limit offset", ListFilter{Limit: 2, Offset: 1}, []string{"b2", "b3"}},
		{"like wildcard is literal", ListFilter{Search: "%"}, nil},
		{"sort amount asc", ListFilter{Sort: SortAmount}, []string{"b3", "b2", "b1", "b4"}},
		{"sort name desc", ListFilter{Sort: SortName, Desc: true}, []string{"b4", "b1", "b2", "b3"}},
		{"unknown sort falls back", ListFilter{Sort: "amount_minor; DROP TABLE booking"}, []string{"b1", "b2", "b3", "b4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].ID != tt.want[i] {
					t.Errorf("row %d = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

// TestSQLiteStore_CountIgnoresPaging verifies Count reports the full match size.
func TestSQLiteStore_CountIgnoresPaging(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	n, err := s.Count(context.Background(), ListFilter{Plan: domain.PlanOneYear, Limit: 1})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

// TestSQLiteStore_Delete verifies a deleted booking is gone.
func TestSQLiteStore_Delete(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	ctx := context.Background()

	if err := s.Delete(ctx, "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByID(ctx, "b1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
