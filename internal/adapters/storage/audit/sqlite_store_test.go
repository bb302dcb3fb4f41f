package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"ironcore/internal/adapters/storage"
	domain "ironcore/internal/domain/audit"
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

// TestSQLiteStore_SaveList verifies events come back newest first and filter by category.
func TestSQLiteStore_SaveList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	events := []domain.Event{
		domain.NewEvent("e1", base, "admin@ironcore.fit", domain.CategoryAuth, domain.ActionLogin),
		domain.NewEvent("e2", base.Add(time.Minute), "admin@ironcore.fit", domain.CategoryBooking, domain.ActionDelete).
			WithResource("booking", "b1").WithDescription("Deleted booking for Meera Joshi"),
		domain.NewEvent("e3", base.Add(2*time.Minute), "admin@ironcore.fit", domain.CategoryUser, domain.ActionUpdate).
			WithResource("user", "u1").WithRequest("10.0.0.1", "agent"),
	}
	for _, e := range events {
		if err := s.Save(ctx, e); err != nil {
			t.Fatalf("Save(%s): %v", e.ID, err)
		}
	}

	all, err := s.List(ctx, Filter{}, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].ID != "e3" || all[2].ID != "e1" {
		t.Fatalf("unexpected order: %+v", all)
	}
	if all[0].IPAddress != "10.0.0.1" || !all[0].Timestamp.Equal(base.Add(2*time.Minute)) {
		t.Errorf("round trip mismatch: %+v", all[0])
	}

	cat := domain.CategoryBooking
	bookings, err := s.List(ctx, Filter{Category: &cat}, 10)
	if err != nil {
		t.Fatalf("List(booking): %v", err)
	}
	if len(bookings) != 1 || bookings[0].Description != "Deleted booking for Meera Joshi" {
		t.Errorf("category filter = %+v", bookings)
	}

	action := domain.ActionLogin
	logins, err := s.List(ctx, Filter{Action: &action}, 10)
	if err != nil {
		t.Fatalf("List(login): %v", err)
	}
	if len(logins) != 1 || logins[0].ID != "e1" {
		t.Errorf("action filter = %+v", logins)
	}

	limited, err := s.List(ctx, Filter{}, 2)
	if err != nil {
		t.Fatalf("List(limit): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit: got %d rows, want 2", len(limited))
	}
}

// TestSQLiteStore_SaveRejectsInvalid verifies incomplete events are not stored.
func TestSQLiteStore_SaveRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	err := s.Save(context.Background(), domain.NewEvent("", time.Now(), "", domain.CategoryAuth, domain.ActionLogin))
	if !errors.Is(err, domain.ErrMissingID) {
		t.Errorf("Save() = %v, want ErrMissingID", err)
	}
}
