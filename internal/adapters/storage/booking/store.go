package booking

import (
	"context"
	"time"

	domain "ironcore/internal/domain/booking"
)

// Store persists Booking state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Booking, error)
	Save(ctx context.Context, value domain.Booking) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Booking, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// Sort keys accepted by ListFilter.Sort.
const (
	SortDate   = "date"
	SortName   = "name"
	SortPlan   = "plan"
	SortAmount = "amount"
	SortStatus = "status"
)

// SortColumns lists the sort keys in header order.
var SortColumns = []string{SortName, SortPlan, SortAmount, SortStatus, SortDate}

// ListFilter carries filtering parameters for List and Count.
// Without a Sort, rows are ordered newest first; ties break on name.
type ListFilter struct {
	Search string    // case-insensitive substring of name
	Plan   string    // exact plan; "" or "All" means any
	Since  time.Time // inclusive lower bound on date; zero means unbounded
	Sort   string    // one of SortColumns; unknown keys fall back to the default order
	Desc   bool
	Limit  int // 0 means no limit
	Offset int
}
