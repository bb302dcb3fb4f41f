package projections

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"ironcore/internal/adapters/storage/booking"
	"ironcore/internal/adapters/storage/user"
	domainBooking "ironcore/internal/domain/booking"
	domainMessage "ironcore/internal/domain/message"
	domainTrial "ironcore/internal/domain/trial"
)

// Chart periods, in tab order.
const (
	PeriodToday     = "Today"
	PeriodThisWeek  = "This Week"
	PeriodThisMonth = "This Month"
	PeriodThisYear  = "This Year"
)

// Periods lists the chart tabs.
var Periods = []string{PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear}

// TrendWindowDays is how far back the stat card trends look.
const TrendWindowDays = 30

// RecentLimit is the number of rows in each "recent" panel.
const RecentLimit = 5

// ParsePeriod returns s if it names a period, otherwise This Month.
func ParsePeriod(s string) string {
	for _, p := range Periods {
		if p == s {
			return p
		}
	}
	return PeriodThisMonth
}

// PeriodStart returns the first day included in period.
// PRE: today is a midnight date
// POST: weeks start on Monday
func PeriodStart(period string, today time.Time) time.Time {
	switch period {
	case PeriodToday:
		return today
	case PeriodThisWeek:
		offset := (int(today.Weekday()) + 6) % 7
		return today.AddDate(0, 0, -offset)
	case PeriodThisYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	}
}

// StatCard is one headline number on the dashboard.
type StatCard struct {
	Label string
	Value string
	Trend string // change over the trend window, e.g. "+3"
	Up    bool   // true when the trend is good news
	Icon  string
}

// ChartBar is one plan's row in the membership chart.
type ChartBar struct {
	Label   string
	Value   int
	Percent int // Value relative to the largest bar, 0..100
}

// PremiumSummary is the membership highlight panel.
type PremiumSummary struct {
	ActiveMembers  int
	NewThisMonth   int
	MonthlyRevenue string
	VsLastMonth    string
	VsLastMonthUp  bool
}

// GetDashboardQuery carries query parameters.
type GetDashboardQuery struct {
	Period string
	Now    time.Time
}

// GetDashboardResult carries the query result.
type GetDashboardResult struct {
	Today          time.Time
	Stats          []StatCard
	Premium        PremiumSummary
	Period         string
	Periods        []string
	Chart          []ChartBar
	RecentBookings []domainBooking.Booking
	RecentTrials   []domainTrial.Request
	RecentMessages []domainMessage.Message
	TrialCount     int
	MessageCount   int
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	BookingStore BookingStore
	UserStore    UserStore
	TrialStore   TrialStore
	MessageStore MessageStore
}

// QueryGetDashboard computes the admin dashboard from the live tables.
// PRE: query.Now is set
// POST: Stats has four cards in display order; Chart has one bar per plan
// INVARIANT: Failed bookings never count as sold or as revenue
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) (GetDashboardResult, error) {
	today := dateOf(query.Now)
	period := ParsePeriod(query.Period)

	bookings, err := deps.BookingStore.List(ctx, booking.ListFilter{})
	if err != nil {
		return GetDashboardResult{}, err
	}
	users, err := deps.UserStore.List(ctx, user.ListFilter{})
	if err != nil {
		return GetDashboardResult{}, err
	}
	trials, err := deps.TrialStore.ListRecent(ctx, RecentLimit)
	if err != nil {
		return GetDashboardResult{}, err
	}
	trialCount, err := deps.TrialStore.Count(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}
	messages, err := deps.MessageStore.ListRecent(ctx, RecentLimit)
	if err != nil {
		return GetDashboardResult{}, err
	}
	messageCount, err := deps.MessageStore.Count(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}

	windowStart := today.AddDate(0, 0, -TrendWindowDays)
	monthStart := PeriodStart(PeriodThisMonth, today)
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	var (
		paid, paidRecent, pending, pendingRecent int
		revenue, revenueRecent                   int64
		monthRevenue, lastMonthRevenue           int64
		newThisMonth                             int
	)
	for _, b := range bookings {
		recent := !b.Date.Before(windowStart)
		switch b.Status {
		case domainBooking.StatusPaid:
			paid++
			revenue += b.AmountMinor
			if recent {
				paidRecent++
				revenueRecent += b.AmountMinor
			}
			if !b.Date.Before(monthStart) {
				monthRevenue += b.AmountMinor
			} else if !b.Date.Before(lastMonthStart) {
				lastMonthRevenue += b.AmountMinor
			}
		case domainBooking.StatusPending:
			pending++
			if recent {
				pendingRecent++
			}
		}
		if b.Status != domainBooking.StatusFailed && !b.Date.Before(monthStart) {
			newThisMonth++
		}
	}

	usersRecent := 0
	for _, u := range users {
		if !u.Joined.Before(windowStart) {
			usersRecent++
		}
	}

	vs, vsUp := percentChange(monthRevenue, lastMonthRevenue)
	recentBookings := bookings
	if len(recentBookings) > RecentLimit {
		recentBookings = recentBookings[:RecentLimit]
	}

	return GetDashboardResult{
		Today: today,
		Stats: []StatCard{
			{Label: "Total Users", Value: groupDigits(len(users)), Trend: plus(usersRecent), Up: usersRecent > 0, Icon: "👥"},
			{Label: "Active Memberships", Value: groupDigits(paid), Trend: plus(paidRecent), Up: paidRecent > 0, Icon: "🏅"},
			{Label: "Pending Payments", Value: groupDigits(pending), Trend: plus(pendingRecent), Up: pendingRecent == 0, Icon: "⏳"},
			{Label: "Total Revenue", Value: domainBooking.FormatCompactINR(revenue), Trend: "+" + domainBooking.FormatCompactINR(revenueRecent), Up: revenueRecent > 0, Icon: "💰"},
		},
		Premium: PremiumSummary{
			ActiveMembers:  paid,
			NewThisMonth:   newThisMonth,
			MonthlyRevenue: domainBooking.FormatCompactINR(monthRevenue),
			VsLastMonth:    vs,
			VsLastMonthUp:  vsUp,
		},
		Period:         period,
		Periods:        Periods,
		Chart:          planChart(bookings, PeriodStart(period, today)),
		RecentBookings: recentBookings,
		RecentTrials:   trials,
		RecentMessages: messages,
		TrialCount:     trialCount,
		MessageCount:   messageCount,
	}, nil
}

// planChart counts non-failed bookings per plan on or after since.
// POST: bars follow domainBooking.ValidPlans order; Percent is 0 when every bar is 0
func planChart(bookings []domainBooking.Booking, since time.Time) []ChartBar {
	counts := make(map[string]int, len(domainBooking.ValidPlans))
	for _, b := range bookings {
		if b.Status == domainBooking.StatusFailed || b.Date.Before(since) {
			continue
		}
		counts[b.Plan]++
	}
	peak := 0
	for _, n := range counts {
		peak = max(peak, n)
	}
	bars := make([]ChartBar, 0, len(domainBooking.ValidPlans))
	for _, plan := range domainBooking.ValidPlans {
		bar := ChartBar{Label: plan, Value: counts[plan]}
		if peak > 0 {
			bar.Percent = int(math.Round(float64(bar.Value) / float64(peak) * 100))
		}
		bars = append(bars, bar)
	}
	return bars
}

// dateOf drops the clock, keeping the caller's calendar date, in UTC to match
// dates read back from storage.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func percentChange(cur, prev int64) (string, bool) {
	if prev == 0 {
		if cur == 0 {
			return "0%", true
		}
		return "new", true
	}
	pct := int(math.Round(float64(cur-prev) / float64(prev) * 100))
	if pct >= 0 {
		return fmt.Sprintf("+%d%%", pct), true
	}
	return fmt.Sprintf("%d%%", pct), false
}

func plus(n int) string {
	return "+" + strconv.Itoa(n)
}

func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
