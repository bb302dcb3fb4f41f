package orchestrators

import (
	"context"
	"log/slog"

	"ironcore/internal/domain/booking"
)

// BookingStoreForManage defines the store interface needed by booking admin actions.
type BookingStoreForManage interface {
	GetByID(ctx context.Context, id string) (booking.Booking, error)
	Delete(ctx context.Context, id string) error
}

// AdminActionRecorder counts admin mutations.
type AdminActionRecorder interface {
	CountAdminAction(action string)
}

// DeleteBookingDeps holds dependencies for DeleteBooking.
type DeleteBookingDeps struct {
	BookingStore BookingStoreForManage
	Recorder     AdminActionRecorder // optional
}

// ExecuteDeleteBooking removes a booking and returns it for the confirmation toast.
// PRE: id is non-empty
// POST: booking no longer exists; booking.ErrNotFound if it never did
func ExecuteDeleteBooking(ctx context.Context, id string, deps DeleteBookingDeps) (booking.Booking, error) {
	b, err := deps.BookingStore.GetByID(ctx, id)
	if err != nil {
		return booking.Booking{}, err
	}
	if err := deps.BookingStore.Delete(ctx, id); err != nil {
		return booking.Booking{}, err
	}
	countAdmin(deps.Recorder, "delete_booking")
	slog.Info("admin_event", "event", "booking_deleted", "id", id, "plan", b.Plan)
	return b, nil
}
