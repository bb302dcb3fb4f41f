package orchestrators

import (
	"context"
	"fmt"
	"time"

	"ironcore/internal/domain/booking"
	"ironcore/internal/domain/user"
)

// BookingStoreForSeed defines the store interface needed by SeedMockData.
type BookingStoreForSeed interface {
	Save(ctx context.Context, b booking.Booking) error
}

// UserStoreForSeed defines the store interface needed by SeedMockData.
type UserStoreForSeed interface {
	Save(ctx context.Context, u user.User) error
}

// SeedMockDataDeps holds dependencies for SeedMockData.
type SeedMockDataDeps struct {
	BookingStore BookingStoreForSeed
	UserStore    UserStoreForSeed
	GenerateID   func() string
	Now          func() time.Time
}

type seedBooking struct {
	name, plan, status string
	daysAgo            int
}

type seedUser struct {
	name, email, role, status string
	daysAgo                   int
}

// Days are counted back from boot so the newest booking and user are always today.
var mockBookings = []seedBooking{
	{"Rohan Sharma", booking.PlanOneYear, booking.StatusPaid, 10},
	{"Priya Nair", booking.PlanThreeMonth, booking.StatusPending, 7},
	{"Arjun Mehta", booking.PlanSixMonth, booking.StatusPaid, 5},
	{"Sneha Patel", booking.PlanOneMonth, booking.StatusFailed, 4},
	{"Vikram Singh", booking.PlanOneYear, booking.StatusPaid, 3},
	{"Kavya Reddy", booking.PlanThreeMonth, booking.StatusPending, 2},
	{"Aditya Kumar", booking.PlanSixMonth, booking.StatusPaid, 1},
	{"Meera Joshi", booking.PlanOneMonth, booking.StatusFailed, 0},
}

var mockUsers = []seedUser{
	{"Rohan Sharma", "rohan@example.com", user.RoleUser, user.StatusActive, 113},
	{"Priya Nair", "priya@example.com", user.RoleUser, user.StatusActive, 87},
	{"Arjun Mehta", "arjun@example.com", user.RoleAdmin, user.StatusActive, 183},
	{"Sneha Patel", "sneha@example.com", user.RoleUser, user.StatusBlocked, 50},
	{"Vikram Singh", "vikram@example.com", user.RoleUser, user.StatusActive, 11},
	{"Kavya Reddy", "kavya@example.com", user.RoleUser, user.StatusActive, 0},
	{"Aditya Kumar", "aditya@example.com", user.RoleAdmin, user.StatusActive, 139},
}

// ExecuteSeedMockData fills the admin tables with the demo bookings and users.
// PRE: tables are empty (the database is created fresh at boot)
// POST: 8 bookings at list price and 7 users are stored
func ExecuteSeedMockData(ctx context.Context, deps SeedMockDataDeps) error {
	today := deps.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	for _, s := range mockBookings {
		b := booking.Booking{
			ID:          deps.GenerateID(),
			Name:        s.name,
			Plan:        s.plan,
			AmountMinor: booking.PlanPriceMinor[s.plan],
			Currency:    booking.CurrencyINR,
			Status:      s.status,
			Date:        today.AddDate(0, 0, -s.daysAgo),
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("seed booking %s: %w", s.name, err)
		}
		if err := deps.BookingStore.Save(ctx, b); err != nil {
			return fmt.Errorf("seed booking %s: %w", s.name, err)
		}
	}

	for _, s := range mockUsers {
		u := user.User{
			ID:     deps.GenerateID(),
			Name:   s.name,
			Email:  s.email,
			Role:   s.role,
			Status: s.status,
			Joined: today.AddDate(0, 0, -s.daysAgo),
		}
		if err := u.Validate(); err != nil {
			return fmt.Errorf("seed user %s: %w", s.email, err)
		}
		if err := deps.UserStore.Save(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", s.email, err)
		}
	}
	return nil
}
