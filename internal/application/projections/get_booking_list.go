package projections

import (
	"context"
	"net/url"

	"ironcore/internal/adapters/storage/booking"
	"ironcore/internal/application/listutil"
	domainBooking "ironcore/internal/domain/booking"
)

// BookingPlanFilter is the query parameter carrying the plan filter.
const BookingPlanFilter = "plan"

// ParseBookingListParams reads the bookings table query string.
// PRE: none
// POST: plan filter is dropped unless it names a known plan
func ParseBookingListParams(q url.Values) listutil.ListParams {
	p := listutil.ParseListParams(q, booking.SortColumns, "asc", []string{BookingPlanFilter})
	if plan := p.Filters[BookingPlanFilter]; !isPlan(plan) {
		delete(p.Filters, BookingPlanFilter)
	}
	return p
}

// BookingListFilter translates list params into a store filter without paging.
func BookingListFilter(p listutil.ListParams) booking.ListFilter {
	plan := p.Filters[BookingPlanFilter]
	if plan == "" {
		plan = domainBooking.PlanAll
	}
	return booking.ListFilter{
		Search: p.Search,
		Plan:   plan,
		Sort:   p.Sort,
		Desc:   p.Desc(),
	}
}

// GetBookingListQuery carries query parameters.
type GetBookingListQuery struct {
	Params listutil.ListParams
}

// GetBookingListResult carries the query result.
type GetBookingListResult struct {
	Bookings   []domainBooking.Booking
	Page       listutil.PageInfo
	Params     listutil.ListParams
	Plans      []string // filter chips, "All" first
	ActivePlan string
}

// GetBookingListDeps holds dependencies for GetBookingList.
type GetBookingListDeps struct {
	BookingStore BookingStore
}

// QueryGetBookingList retrieves one page of bookings for the admin table.
// PRE: query.Params came from ParseBookingListParams
// POST: Page.Total counts every match; Bookings holds at most Page.PerPage rows
// INVARIANT: an out-of-range page is clamped to the last page
func QueryGetBookingList(ctx context.Context, query GetBookingListQuery, deps GetBookingListDeps) (GetBookingListResult, error) {
	filter := BookingListFilter(query.Params)

	total, err := deps.BookingStore.Count(ctx, filter)
	if err != nil {
		return GetBookingListResult{}, err
	}
	page := listutil.NewPageInfo(query.Params.Page, query.Params.PerPage, total)

	filter.Limit = page.PerPage
	filter.Offset = page.Offset()
	rows, err := deps.BookingStore.List(ctx, filter)
	if err != nil {
		return GetBookingListResult{}, err
	}

	params := query.Params
	params.Page = page.Page
	return GetBookingListResult{
		Bookings:   rows,
		Page:       page,
		Params:     params,
		Plans:      append([]string{domainBooking.PlanAll}, domainBooking.ValidPlans...),
		ActivePlan: filter.Plan,
	}, nil
}

func isPlan(s string) bool {
	for _, p := range domainBooking.ValidPlans {
		if p == s {
			return true
		}
	}
	return false
}
