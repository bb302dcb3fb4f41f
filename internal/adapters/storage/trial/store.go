package trial

import (
	"context"

	domain "ironcore/internal/domain/trial"
)

// Store persists free-trial requests.
type Store interface {
	Save(ctx context.Context, value domain.Request) error
	ListRecent(ctx context.Context, limit int) ([]domain.Request, error)
	Count(ctx context.Context) (int, error)
}
