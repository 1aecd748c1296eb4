package order

import (
	"context"

	"creatim-shop/internal/domain"
)

// CreateInput carries everything the submit transaction persists. Snapshots
// and total are computed by the caller; the repository only makes the write
// atomic with the cart's submitted flag.
type CreateInput struct {
	Session       string
	Pwd           string
	OrderNumber   int64
	CustomerPhone string
	Price         int64
	Articles      []domain.OrderArticle
	Subscriptions []domain.OrderSubscription
}

type Repository interface {
	// CreateFromCart marks the cart submitted and inserts the order row in a
	// single transaction. Neither change is visible if the other fails.
	CreateFromCart(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
	// ListProcessed returns a session's PROCESSED orders newest-first,
	// optionally restricted to one customer phone.
	ListProcessed(ctx context.Context, sessionID string, phone *string) ([]domain.Order, error)
}
