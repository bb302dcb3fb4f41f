package projections

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"ironcore/internal/adapters/storage/booking"
	"ironcore/internal/adapters/storage/user"
	domainBooking "ironcore/internal/domain/booking"
	domainMessage "ironcore/internal/domain/message"
	domainTrial "ironcore/internal/domain/trial"
	domainUser "ironcore/internal/domain/user"
)

type mockBookingStore struct {
	bookings   []domainBooking.Booking
	lastFilter booking.ListFilter
	countErr   error
}

// List returns the seeded bookings, honouring Limit and Offset.
// PRE: filter is valid
// POST: records the filter for assertions
func (m *mockBookingStore) List(_ context.Context, filter booking.ListFilter) ([]domainBooking.Booking, error) {
	m.lastFilter = filter
	rows := m.bookings
	if filter.Offset > len(rows) {
		return nil, nil
	}
	rows = rows[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(rows) {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

// Count returns the number of seeded bookings.
func (m *mockBookingStore) Count(_ context.Context, _ booking.ListFilter) (int, error) {
	return len(m.bookings), m.countErr
}

type mockUserStore struct {
	users      []domainUser.User
	lastFilter user.ListFilter
}

// List returns the seeded users, honouring Limit and Offset.
func (m *mockUserStore) List(_ context.Context, filter user.ListFilter) ([]domainUser.User, error) {
	m.lastFilter = filter
	rows := m.users
	if filter.Offset > len(rows) {
		return nil, nil
	}
	rows = rows[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(rows) {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

// Count returns the number of seeded users.
func (m *mockUserStore) Count(_ context.Context, _ user.ListFilter) (int, error) {
	return len(m.users), nil
}

type mockTrialStore struct {
	trials []domainTrial.Request
}

// ListRecent returns up to limit seeded trials.
func (m *mockTrialStore) ListRecent(_ context.Context, limit int) ([]domainTrial.Request, error) {
	return m.trials[:min(limit, len(m.trials))], nil
}

// Count returns the number of seeded trials.
func (m *mockTrialStore) Count(_ context.Context) (int, error) {
	return len(m.trials), nil
}

type mockMessageStore struct {
	messages []domainMessage.Message
}

// ListRecent returns up to limit seeded messages.
func (m *mockMessageStore) ListRecent(_ context.Context, limit int) ([]domainMessage.Message, error) {
	return m.messages[:min(limit, len(m.messages))], nil
}

// Count returns the number of seeded messages.
func (m *mockMessageStore) Count(_ context.Context) (int, error) {
	return len(m.messages), nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

// dashboardBookings are newest first, as the store returns them.
func dashboardBookings() []domainBooking.Booking {
	return []domainBooking.Booking{
		{ID: "b1", Name: "Rahul Sharma", Plan: domainBooking.PlanOneYear, AmountMinor: 12_000_00, Status: domainBooking.StatusPaid, Date: day("2026-10-17")},
		{ID: "b2", Name: "Priya Singh", Plan: domainBooking.PlanThreeMonth, AmountMinor: 3_500_00, Status: domainBooking.StatusPending, Date: day("2026-10-16")},
		{ID: "b4", Name: "Sneha Rao", Plan: domainBooking.PlanOneYear, AmountMinor: 12_000_00, Status: domainBooking.StatusFailed, Date: day("2026-10-15")},
		{ID: "b3", Name: "Amit Kumar", Plan: domainBooking.PlanOneMonth, AmountMinor: 1_500_00, Status: domainBooking.StatusPaid, Date: day("2026-10-12")},
		{ID: "b5", Name: "Karan Mehta", Plan: domainBooking.PlanSixMonth, AmountMinor: 6_800_00, Status: domainBooking.StatusPaid, Date: day("2026-09-20")},
		{ID: "b6", Name: "Neha Gupta", Plan: domainBooking.PlanOneYear, AmountMinor: 12_000_00, Status: domainBooking.StatusPaid, Date: day("2026-03-01")},
	}
}

func dashboardDeps() GetDashboardDeps {
	return GetDashboardDeps{
		BookingStore: &mockBookingStore{bookings: dashboardBookings()},
		UserStore: &mockUserStore{users: []domainUser.User{
			{ID: "u1", Name: "Rahul", Joined: day("2026-10-01")},
			{ID: "u2", Name: "Priya", Joined: day("2026-01-01")},
		}},
		TrialStore:   &mockTrialStore{trials: []domainTrial.Request{{ID: "t1"}, {ID: "t2"}}},
		MessageStore: &mockMessageStore{messages: []domainMessage.Message{{ID: "m1"}}},
	}
}

// TestQueryGetDashboard_Stats verifies the stat cards and membership panel.
func TestQueryGetDashboard_Stats(t *testing.T) {
	// Saturday afternoon, local time should not matter.
	now := time.Date(2026, 10, 17, 15, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	got, err := QueryGetDashboard(context.Background(), GetDashboardQuery{Now: now}, dashboardDeps())
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}

	want := []StatCard{
		{Label: "Total Users", Value: "2", Trend: "+1", Up: true},
		{Label: "Active Memberships", Value: "4", Trend: "+3", Up: true},
		{Label: "Pending Payments", Value: "1", Trend: "+1", Up: false},
		{Label: "Total Revenue", Value: "₹32,300", Trend: "+₹20,300", Up: true},
	}
	if len(got.Stats) != len(want) {
		t.Fatalf("got %d stat cards, want %d", len(got.Stats), len(want))
	}
	for i, w := range want {
		s := got.Stats[i]
		if s.Label != w.Label || s.Value != w.Value || s.Trend != w.Trend || s.Up != w.Up {
			t.Errorf("card %d = %+v, want %+v", i, s, w)
		}
	}

	p := got.Premium
	if p.ActiveMembers != 4 || p.NewThisMonth != 3 || p.MonthlyRevenue != "₹13,500" {
		t.Errorf("premium = %+v", p)
	}
	if p.VsLastMonth != "+99%" || !p.VsLastMonthUp {
		t.Errorf("vs last month = %q up=%v, want +99%% up", p.VsLastMonth, p.VsLastMonthUp)
	}
	if got.Period != PeriodThisMonth {
		t.Errorf("default period = %q, want This Month", got.Period)
	}
	if len(got.RecentBookings) != RecentLimit || got.RecentBookings[0].ID != "b1" {
		t.Errorf("recent bookings = %d starting %v", len(got.RecentBookings), got.RecentBookings)
	}
	if got.TrialCount != 2 || got.MessageCount != 1 || len(got.RecentTrials) != 2 {
		t.Errorf("trials=%d messages=%d", got.TrialCount, got.MessageCount)
	}
}

// TestQueryGetDashboard_Chart verifies per-period plan counts and bar scaling.
func TestQueryGetDashboard_Chart(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		period      string
		wantValues  []int
		wantPercent []int
	}{
		{PeriodToday, []int{0, 0, 0, 1}, []int{0, 0, 0, 100}},
		{PeriodThisWeek, []int{1, 1, 0, 1}, []int{100, 100, 0, 100}},
		{PeriodThisMonth, []int{1, 1, 0, 1}, []int{100, 100, 0, 100}},
		{PeriodThisYear, []int{1, 1, 1, 2}, []int{50, 50, 50, 100}},
		{"Last Decade", []int{1, 1, 0, 1}, []int{100, 100, 0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, err := QueryGetDashboard(context.Background(), GetDashboardQuery{Period: tt.period, Now: now}, dashboardDeps())
			if err != nil {
				t.Fatalf("QueryGetDashboard: %v", err)
			}
			if len(got.Chart) != len(domainBooking.ValidPlans) {
				t.Fatalf("got %d bars", len(got.Chart))
			}
			for i, bar := range got.Chart {
				if bar.Label != domainBooking.ValidPlans[i] {
					t.Errorf("bar %d label = %q", i, bar.Label)
				}
				if bar.Value != tt.wantValues[i] || bar.Percent != tt.wantPercent[i] {
					t.Errorf("bar %s = %d (%d%%), want %d (%d%%)", bar.Label, bar.Value, bar.Percent, tt.wantValues[i], tt.wantPercent[i])
				}
			}
		})
	}
}

// TestQueryGetDashboard_Empty verifies an empty club renders without dividing by zero.
func TestQueryGetDashboard_Empty(t *testing.T) {
	deps := GetDashboardDeps{
		BookingStore: &mockBookingStore{},
		UserStore:    &mockUserStore{},
		TrialStore:   &mockTrialStore{},
		MessageStore: &mockMessageStore{},
	}
	got, err := QueryGetDashboard(context.Background(), GetDashboardQuery{Now: time.Now()}, deps)
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}
	for _, bar := range got.Chart {
		if bar.Percent != 0 {
			t.Errorf("bar %s percent = %d, want 0", bar.Label, bar.Percent)
		}
	}
	if got.Premium.VsLastMonth != "0%" {
		t.Errorf("vs last month = %q, want 0%%", got.Premium.VsLastMonth)
	}
	if got.Stats[3].Value != "₹0" {
		t.Errorf("revenue = %q", got.Stats[3].Value)
	}
}

// TestPeriodStart verifies week, month and year boundaries.
func TestPeriodStart(t *testing.T) {
	sat := day("2026-10-17")
	sun := day("2026-10-18")
	tests := []struct {
		period string
		today  time.Time
		want   string
	}{
		{PeriodToday, sat, "2026-10-17"},
		{PeriodThisWeek, sat, "2026-10-12"},
		{PeriodThisWeek, sun, "2026-10-12"},
		{PeriodThisWeek, day("2026-10-12"), "2026-10-12"},
		{PeriodThisMonth, sat, "2026-10-01"},
		{PeriodThisYear, sat, "2026-01-01"},
	}
	for _, tt := range tests {
		if got := PeriodStart(tt.period, tt.today).Format("2006-01-02"); got != tt.want {
			t.Errorf("PeriodStart(%s, %s) = %s, want %s", tt.period, tt.today.Format("Mon"), got, tt.want)
		}
	}
}

// TestQueryGetBookingList_Paging verifies the filter, clamping and page window.
func TestQueryGetBookingList_Paging(t *testing.T) {
	store := &mockBookingStore{bookings: dashboardBookings()}
	q, _ := url.ParseQuery("q=a&plan=1+Year&per_page=5&page=9&sort=amount&dir=desc")
	params := ParseBookingListParams(q)

	got, err := QueryGetBookingList(context.Background(), GetBookingListQuery{Params: params}, GetBookingListDeps{BookingStore: store})
	if err != nil {
		t.Fatalf("QueryGetBookingList: %v", err)
	}

	if got.Page.Page != 2 || got.Page.TotalPages != 2 || got.Params.Page != 2 {
		t.Errorf("page = %+v, params.page = %d", got.Page, got.Params.Page)
	}
	if len(got.Bookings) != 1 || got.Bookings[0].ID != "b6" {
		t.Errorf("bookings = %v", got.Bookings)
	}
	f := store.lastFilter
	if f.Search != "a" || f.Plan != domainBooking.PlanOneYear || f.Sort != booking.SortAmount || !f.Desc {
		t.Errorf("filter = %+v", f)
	}
	if f.Limit != 5 || f.Offset != 5 {
		t.Errorf("limit/offset = %d/%d, want 5/5", f.Limit, f.Offset)
	}
	if got.ActivePlan != domainBooking.PlanOneYear || got.Plans[0] != domainBooking.PlanAll {
		t.Errorf("active plan = %q, plans = %v", got.ActivePlan, got.Plans)
	}
}

// TestParseBookingListParams_UnknownPlan verifies a tampered plan falls back to All.
func TestParseBookingListParams_UnknownPlan(t *testing.T) {
	q, _ := url.ParseQuery("plan=Lifetime")
	p := ParseBookingListParams(q)
	if _, ok := p.Filters[BookingPlanFilter]; ok {
		t.Errorf("unknown plan kept: %v", p.Filters)
	}
	if f := BookingListFilter(p); f.Plan != domainBooking.PlanAll {
		t.Errorf("plan = %q, want All", f.Plan)
	}
}

// TestQueryGetBookingList_StoreError verifies store failures propagate.
func TestQueryGetBookingList_StoreError(t *testing.T) {
	boom := errors.New("boom")
	store := &mockBookingStore{countErr: boom}
	_, err := QueryGetBookingList(context.Background(), GetBookingListQuery{Params: ParseBookingListParams(url.Values{})}, GetBookingListDeps{BookingStore: store})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

// TestQueryGetUserList verifies search and status reach the store.
func TestQueryGetUserList(t *testing.T) {
	store := &mockUserStore{users: []domainUser.User{
		{ID: "u1", Name: "Rahul", Email: "rahul@gmail.com", Status: domainUser.StatusActive},
		{ID: "u2", Name: "Karan", Email: "karan@yahoo.com", Status: domainUser.StatusBlocked},
	}}
	q, _ := url.ParseQuery("q=GMAIL&status=Blocked&sort=email")
	got, err := QueryGetUserList(context.Background(), GetUserListQuery{Params: ParseUserListParams(q)}, GetUserListDeps{UserStore: store})
	if err != nil {
		t.Fatalf("QueryGetUserList: %v", err)
	}
	if store.lastFilter.Search != "GMAIL" || store.lastFilter.Status != domainUser.StatusBlocked || store.lastFilter.Sort != user.SortEmail {
		t.Errorf("filter = %+v", store.lastFilter)
	}
	if got.Page.Total != 2 || len(got.Users) != 2 || len(got.Roles) != 2 {
		t.Errorf("result = %+v", got)
	}

	q, _ = url.ParseQuery("status=Deleted")
	if p := ParseUserListParams(q); len(p.Filters) != 0 {
		t.Errorf("unknown status kept: %v", p.Filters)
	}
}
