package cart

import (
	"context"
	"time"

	"creatim-shop/internal/domain"
)

// Repository owns the carts table. Every method matches on the exact
// (session, pwd) pair; there are no partial lookups.
type Repository interface {
	Create(ctx context.Context, session, pwd string) error
	Exists(ctx context.Context, session, pwd string) (bool, error)
	Get(ctx context.Context, session, pwd string) (*domain.Cart, error)
	IsSubmitted(ctx context.Context, session, pwd string) (bool, error)
	Update(ctx context.Context, session, pwd, content string) error
	ResetSubmitted(ctx context.Context, session, pwd string) error
	SetPhone(ctx context.Context, session, pwd string, phone *int64) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
