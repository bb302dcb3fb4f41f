package message

import (
	"context"

	domain "ironcore/internal/domain/message"
)

// Store persists contact messages.
type Store interface {
	Save(ctx context.Context, value domain.Message) error
	ListRecent(ctx context.Context, limit int) ([]domain.Message, error)
	Count(ctx context.Context) (int, error)
}
