package projections

import (
	"context"

	"ironcore/internal/adapters/storage/booking"
	"ironcore/internal/adapters/storage/user"
	domainBooking "ironcore/internal/domain/booking"
	domainMessage "ironcore/internal/domain/message"
	domainTrial "ironcore/internal/domain/trial"
	domainUser "ironcore/internal/domain/user"
)

// BookingStore interface for booking queries.
type BookingStore interface {
	List(ctx context.Context, filter booking.ListFilter) ([]domainBooking.Booking, error)
	Count(ctx context.Context, filter booking.ListFilter) (int, error)
}

// UserStore interface for user queries.
type UserStore interface {
	List(ctx context.Context, filter user.ListFilter) ([]domainUser.User, error)
	Count(ctx context.Context, filter user.ListFilter) (int, error)
}

// TrialStore interface for trial request queries.
type TrialStore interface {
	ListRecent(ctx context.Context, limit int) ([]domainTrial.Request, error)
	Count(ctx context.Context) (int, error)
}

// MessageStore interface for contact message queries.
type MessageStore interface {
	ListRecent(ctx context.Context, limit int) ([]domainMessage.Message, error)
	Count(ctx context.Context) (int, error)
}
