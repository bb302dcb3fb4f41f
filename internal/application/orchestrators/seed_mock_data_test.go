package orchestrators

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ironcore/internal/domain/booking"
	"ironcore/internal/domain/user"
)

// TestExecuteSeedMockData verifies counts, prices and date anchoring.
func TestExecuteSeedMockData(t *testing.T) {
	bookings, users := &mockBookingStore{}, &mockUserStore{}
	n := 0
	now := time.Date(2026, 10, 17, 15, 45, 0, 0, time.UTC)
	deps := SeedMockDataDeps{
		BookingStore: bookings,
		UserStore:    users,
		GenerateID:   func() string { n++; return fmt.Sprintf("id-%d", n) },
		Now:          func() time.Time { return now },
	}

	if err := ExecuteSeedMockData(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings.rows) != 8 {
		t.Errorf("bookings = %d, want 8", len(bookings.rows))
	}
	if len(users.rows) != 7 {
		t.Errorf("users = %d, want 7", len(users.rows))
	}

	today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	var newest time.Time
	for _, b := range bookings.rows {
		if b.AmountMinor != booking.PlanPriceMinor[b.Plan] {
			t.Errorf("%s amount = %d, want list price", b.Name, b.AmountMinor)
		}
		if b.Date.After(newest) {
			newest = b.Date
		}
	}
	if !newest.Equal(today) {
		t.Errorf("newest booking = %v, want today", newest)
	}

	admins := 0
	for _, u := range users.rows {
		if u.Role == user.RoleAdmin {
			admins++
		}
	}
	if admins != 2 {
		t.Errorf("admins = %d, want 2", admins)
	}
}
