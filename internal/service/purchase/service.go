package purchase

import (
	"context"

	"creatim-shop/internal/domain"
)

type cartRepo interface {
	Exists(ctx context.Context, session, pwd string) (bool, error)
}

type orderRepo interface {
	ListProcessed(ctx context.Context, sessionID string, phone *string) ([]domain.Order, error)
}

// Service computes the purchase view: a read-only aggregate over a session's
// processed orders. Nothing here is persisted.
type Service struct {
	carts  cartRepo
	orders orderRepo
}

func New(carts cartRepo, orders orderRepo) *Service {
	return &Service{carts: carts, orders: orders}
}

// Get sums article amounts per id across every processed order of the session
// (optionally narrowed to one phone) and takes the subscription selection from
// the newest order only; older selections are superseded. Zero processed
// orders yield an empty view, not a failure.
func (s *Service) Get(ctx context.Context, sessionID, pwd string, phone *string) (*domain.PurchaseView, error) {
	ok, err := s.carts.Exists(ctx, sessionID, pwd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	orders, err := s.orders.ListProcessed(ctx, sessionID, phone)
	if err != nil {
		return nil, err
	}

	view := &domain.PurchaseView{
		Articles:      []domain.PurchasedArticle{},
		Subscriptions: []domain.PurchasedSubscription{},
	}
	if len(orders) == 0 {
		return view, nil
	}

	amounts := make(map[int64]int64)
	var seen []int64
	for _, ord := range orders {
		for _, a := range ord.Articles {
			if _, ok := amounts[a.ID]; !ok {
				seen = append(seen, a.ID)
			}
			amounts[a.ID] += a.Amount
		}
	}
	for _, id := range seen {
		view.Articles = append(view.Articles, domain.PurchasedArticle{ID: id, Amount: amounts[id]})
	}

	// orders are newest-first; only the latest subscription selection counts.
	for _, sub := range orders[0].Subscriptions {
		view.Subscriptions = append(view.Subscriptions, domain.PurchasedSubscription{ID: sub.ID})
	}

	return view, nil
}
