package catalog

import (
	"context"

	"creatim-shop/internal/domain"
)

// Repository reads the two catalogs. Articles and subscriptions live in
// separate tables with independent id spaces; nothing here writes.
type Repository interface {
	GetArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	SearchArticles(ctx context.Context, term string) ([]domain.Article, error)
	ListArticlesByPriceRange(ctx context.Context, min, max int64) ([]domain.Article, error)

	GetSubscriptionByID(ctx context.Context, id int64) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	ListSubscriptionsByType(ctx context.Context, physical bool) ([]domain.Subscription, error)
	ListSubscriptionsByPriceRange(ctx context.Context, min, max int64) ([]domain.Subscription, error)
}
