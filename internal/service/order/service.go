package order

import (
	"context"
	"math/rand"
	"time"

	"creatim-shop/internal/domain"
	orderrepo "creatim-shop/internal/repository/order"
	catalogsvc "creatim-shop/internal/service/catalog"
	"go.uber.org/zap"
)

type cartRepo interface {
	Exists(ctx context.Context, session, pwd string) (bool, error)
	Get(ctx context.Context, session, pwd string) (*domain.Cart, error)
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
}

type resolver interface {
	Resolve(ctx context.Context, id int64) (catalogsvc.Resolution, error)
}

// Service turns a cart into an immutable order: it snapshots the resolved
// catalog items, computes the total, and persists the order atomically with
// the cart's submitted flag.
type Service struct {
	carts   cartRepo
	orders  orderRepo
	catalog resolver
	logger  *zap.SugaredLogger
}

func New(carts cartRepo, orders orderRepo, catalog resolver, logger *zap.SugaredLogger) *Service {
	return &Service{carts: carts, orders: orders, catalog: catalog, logger: logger}
}

// Submit validates the credential pair, snapshots the cart against both
// catalogs and writes the order. Line ids found in neither catalog are
// dropped from the snapshots and the total; a cart whose blob holds zero
// items fails with ErrEmptyCart. An all-unresolved cart still produces an
// order with empty snapshots and total 0.
func (s *Service) Submit(ctx context.Context, sessionID, pwd, customerPhone string) (*domain.Order, error) {
	ok, err := s.carts.Exists(ctx, sessionID, pwd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	cart, err := s.carts.Get(ctx, sessionID, pwd)
	if err != nil {
		return nil, err
	}
	items, err := domain.ParseCartLines(cart.Content)
	if err != nil || len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var (
		total         int64
		articles      []domain.OrderArticle
		subscriptions []domain.OrderSubscription
	)
	for _, item := range items {
		res, err := s.catalog.Resolve(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		switch res.Kind {
		case catalogsvc.KindArticle:
			articles = append(articles, domain.OrderArticle{
				ID:     item.ID,
				Amount: item.Amount,
				Name:   res.Article.Name,
				Price:  res.Article.Price,
			})
			total += res.Article.Price * item.Amount
		case catalogsvc.KindSubscription:
			subscriptions = append(subscriptions, domain.OrderSubscription{
				ID:          item.ID,
				Amount:      item.Amount,
				Description: res.Subscription.Description,
				Price:       res.Subscription.Price,
			})
			total += res.Subscription.Price * item.Amount
		default:
			// Stale catalog reference; tolerated, not ordered.
			s.logger.Debugw("dropping unresolved cart item", "id", item.ID, "session", sessionID)
		}
	}

	ord, err := s.orders.CreateFromCart(ctx, orderrepo.CreateInput{
		Session:       sessionID,
		Pwd:           pwd,
		OrderNumber:   newOrderNumber(time.Now()),
		CustomerPhone: customerPhone,
		Price:         total,
		Articles:      articles,
		Subscriptions: subscriptions,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("order submitted",
		"order_id", ord.ID, "order_number", ord.OrderNumber, "price", ord.Price)
	return ord, nil
}

// History returns every order the credential pair ever submitted,
// newest-first, regardless of processing status.
func (s *Service) History(ctx context.Context, sessionID, pwd string) ([]domain.Order, error) {
	ok, err := s.carts.Exists(ctx, sessionID, pwd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return s.orders.ListBySession(ctx, sessionID)
}

// newOrderNumber builds a display number from the submission second and a
// four-digit random suffix. Best-effort unique; orders.id is the identity.
func newOrderNumber(now time.Time) int64 {
	return now.Unix()*10000 + int64(rand.Intn(9000)+1000)
}
