package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Plan constants
const (
	PlanOneMonth   = "1 Month"
	PlanThreeMonth = "3 Month"
	PlanSixMonth   = "6 Month"
	PlanOneYear    = "1 Year"
)

// Status constants
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
	StatusFailed  = "Failed"
)

// PlanAll is the filter value meaning "no plan filter".
const PlanAll = "All"

// CurrencyINR is the only currency bookings are taken in.
const CurrencyINR = "INR"

// ValidPlans lists plans in display order.
var ValidPlans = []string{PlanOneMonth, PlanThreeMonth, PlanSixMonth, PlanOneYear}

// ValidStatuses lists payment statuses.
var ValidStatuses = []string{StatusPaid, StatusPending, StatusFailed}

// PlanPriceMinor is the list price of each plan in paise.
var PlanPriceMinor = map[string]int64{
	PlanOneMonth:   1_500_00,
	PlanThreeMonth: 3_500_00,
	PlanSixMonth:   6_800_00,
	PlanOneYear:    12_000_00,
}

// Domain errors
var (
	ErrEmptyName     = errors.New("member name cannot be empty")
	ErrNameTooLong   = errors.New("member name cannot exceed 100 characters")
	ErrInvalidPlan   = errors.New("plan must be one of: 1 Month, 3 Month, 6 Month, 1 Year")
	ErrInvalidStatus = errors.New("status must be one of: Paid, Pending, Failed")
	ErrNegativeTotal = errors.New("amount cannot be negative")
	ErrEmptyDate     = errors.New("booking date is required")
	ErrNotFound      = errors.New("booking not found")
)

// Booking is a membership purchase shown in the admin panel.
type Booking struct {
	ID          string
	Name        string
	Plan        string
	AmountMinor int64 // paise
	Currency    string
	Status      string
	Date        time.Time
}

// Validate checks if the Booking has valid data.
// PRE: Booking struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Booking) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if len(b.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !contains(ValidPlans, b.Plan) {
		return ErrInvalidPlan
	}
	if !contains(ValidStatuses, b.Status) {
		return ErrInvalidStatus
	}
	if b.AmountMinor < 0 {
		return ErrNegativeTotal
	}
	if b.Date.IsZero() {
		return ErrEmptyDate
	}
	return nil
}

// FormatAmount renders the amount the way the admin table shows it, e.g. "₹12,000".
// INVARIANT: Booking fields are not mutated
func (b *Booking) FormatAmount() string {
	rupees := b.AmountMinor / 100
	s := groupThousands(rupees)
	if paise := b.AmountMinor % 100; paise != 0 {
		s += fmt.Sprintf(".%02d", paise)
	}
	return "₹" + s
}

// FormatCompactINR renders paise in Indian short form for stat cards:
// "₹8.4L" from one lakh, "₹1.2Cr" from one crore, otherwise grouped rupees.
func FormatCompactINR(minor int64) string {
	const (
		lakh  = 100_000
		crore = 100 * lakh
	)
	rupees := minor / 100
	switch {
	case rupees >= crore:
		return "₹" + strings.TrimSuffix(fmt.Sprintf("%.1f", float64(rupees)/crore), ".0") + "Cr"
	case rupees >= lakh:
		return "₹" + strings.TrimSuffix(fmt.Sprintf("%.1f", float64(rupees)/lakh), ".0") + "L"
	default:
		return "₹" + groupThousands(rupees)
	}
}

// DateString returns the booking date as YYYY-MM-DD.
func (b *Booking) DateString() string {
	return b.Date.Format("2006-01-02")
}

// MatchesName reports whether the booking name contains q, case-insensitively.
// An empty q matches everything.
func (b *Booking) MatchesName(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Name), strings.ToLower(q))
}

// MatchesPlan reports whether the booking is on plan. "All" and "" match everything.
func (b *Booking) MatchesPlan(plan string) bool {
	return plan == "" || plan == PlanAll || b.Plan == plan
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
