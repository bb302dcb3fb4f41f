package booking_test

import (
	"testing"
	"time"

	"ironcore/internal/domain/booking"
)

// TestBooking_Validate tests validation of Booking.
func TestBooking_Validate(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	valid := booking.Booking{ID: "b1", Name: "Rohan Sharma", Plan: booking.PlanOneYear, AmountMinor: 12_000_00, Currency: booking.CurrencyINR, Status: booking.StatusPaid, Date: date}

	tests := []struct {
		name    string
		mutate  func(b *booking.Booking)
		wantErr error
	}{
		{"valid", func(b *booking.Booking) {}, nil},
		{"empty name", func(b *booking.Booking) { b.Name = "  " }, booking.ErrEmptyName},
		{"bad plan", func(b *booking.Booking) { b.Plan = "2 Year" }, booking.ErrInvalidPlan},
		{"bad status", func(b *booking.Booking) { b.Status = "Refunded" }, booking.ErrInvalidStatus},
		{"negative amount", func(b *booking.Booking) { b.AmountMinor = -1 }, booking.ErrNegativeTotal},
		{"zero date", func(b *booking.Booking) { b.Date = time.Time{} }, booking.ErrEmptyDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			if err := b.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestBooking_FormatAmount verifies rupee formatting with thousands separators.
func TestBooking_FormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{1_500_00, "₹1,500"},
		{12_000_00, "₹12,000"},
		{350, "₹3.50"},
		{1_234_567_89, "₹1,234,567.89"},
		{0, "₹0"},
	}
	for _, tt := range tests {
		b := booking.Booking{AmountMinor: tt.minor}
		if got := b.FormatAmount(); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}

// TestBooking_Matches verifies search and plan filtering.
func TestBooking_Matches(t *testing.T) {
	b := booking.Booking{Name: "Priya Nair", Plan: booking.PlanThreeMonth}

	if !b.MatchesName("") || !b.MatchesName("priya") || !b.MatchesName("NAIR") {
		t.Error("expected case-insensitive name match")
	}
	if b.MatchesName("rohan") {
		t.Error("unexpected name match")
	}
	if !b.MatchesPlan(booking.PlanAll) || !b.MatchesPlan("") || !b.MatchesPlan(booking.PlanThreeMonth) {
		t.Error("expected plan match")
	}
	if b.MatchesPlan(booking.PlanOneYear) {
		t.Error("unexpected plan match")
	}
}

// TestFormatCompactINR verifies the lakh and crore short forms.
func TestFormatCompactINR(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "₹0"},
		{42_000_00, "₹42,000"},
		{1_00_000_00, "₹1L"},
		{8_40_000_00, "₹8.4L"},
		{2_14_000_00, "₹2.1L"},
		{1_20_00_000_00, "₹1.2Cr"},
	}
	for _, tt := range tests {
		if got := booking.FormatCompactINR(tt.minor); got != tt.want {
			t.Errorf("FormatCompactINR(%d) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}
