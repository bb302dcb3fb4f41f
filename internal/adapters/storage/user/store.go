package user

import (
	"context"

	domain "ironcore/internal/domain/user"
)

// Store persists User state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Save(ctx context.Context, value domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.User, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// Sort keys accepted by ListFilter.Sort.
const (
	SortName   = "name"
	SortEmail  = "email"
	SortRole   = "role"
	SortStatus = "status"
	SortJoined = "joined"
)

// SortColumns lists the sort keys in header order.
var SortColumns = []string{SortName, SortEmail, SortRole, SortStatus, SortJoined}

// ListFilter carries filtering parameters for List and Count.
// Without a Sort, rows are ordered by join date, newest first.
type ListFilter struct {
	Search string // case-insensitive substring of name or email
	Status string // exact status; "" means any
	Sort   string // one of SortColumns
	Desc   bool
	Limit  int // 0 means no limit
	Offset int
}
