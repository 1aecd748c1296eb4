package catalog

import (
	"context"
	"errors"

	"creatim-shop/internal/domain"
	catalogrepo "creatim-shop/internal/repository/catalog"
)

// Kind tags the outcome of resolving a cart line id against both catalogs.
type Kind int

const (
	KindUnresolved Kind = iota
	KindArticle
	KindSubscription
)

// Resolution is the tagged result of probing an id: exactly one of Article or
// Subscription is set unless Kind is KindUnresolved.
type Resolution struct {
	Kind         Kind
	Article      *domain.Article
	Subscription *domain.Subscription
}

type repo interface {
	GetArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	SearchArticles(ctx context.Context, term string) ([]domain.Article, error)
	ListArticlesByPriceRange(ctx context.Context, min, max int64) ([]domain.Article, error)
	GetSubscriptionByID(ctx context.Context, id int64) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	ListSubscriptionsByType(ctx context.Context, physical bool) ([]domain.Subscription, error)
	ListSubscriptionsByPriceRange(ctx context.Context, min, max int64) ([]domain.Subscription, error)
}

type Service struct {
	repo repo
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Resolve probes the article catalog first, then subscriptions. An id in
// neither catalog resolves to KindUnresolved without error; only storage
// failures propagate.
func (s *Service) Resolve(ctx context.Context, id int64) (Resolution, error) {
	article, err := s.repo.GetArticleByID(ctx, id)
	if err == nil {
		return Resolution{Kind: KindArticle, Article: article}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return Resolution{}, err
	}

	sub, err := s.repo.GetSubscriptionByID(ctx, id)
	if err == nil {
		return Resolution{Kind: KindSubscription, Subscription: sub}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return Resolution{}, err
	}
	return Resolution{Kind: KindUnresolved}, nil
}

func (s *Service) ArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	return s.repo.GetArticleByID(ctx, id)
}

// Articles lists the catalog newest-first; a non-empty term searches name and
// description instead.
func (s *Service) Articles(ctx context.Context, term string) ([]domain.Article, error) {
	if term != "" {
		return s.repo.SearchArticles(ctx, term)
	}
	return s.repo.ListArticles(ctx)
}

// ArticlesByPriceRange lists articles priced within [min, max], cheapest-first.
func (s *Service) ArticlesByPriceRange(ctx context.Context, min, max int64) ([]domain.Article, error) {
	return s.repo.ListArticlesByPriceRange(ctx, min, max)
}

func (s *Service) SubscriptionByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	return s.repo.GetSubscriptionByID(ctx, id)
}

// Subscriptions lists cheapest-first, optionally filtered to physical or
// digital packages.
func (s *Service) Subscriptions(ctx context.Context, physical *bool) ([]domain.Subscription, error) {
	if physical != nil {
		return s.repo.ListSubscriptionsByType(ctx, *physical)
	}
	return s.repo.ListSubscriptions(ctx)
}

// SubscriptionsByPriceRange lists packages priced within [min, max],
// cheapest-first.
func (s *Service) SubscriptionsByPriceRange(ctx context.Context, min, max int64) ([]domain.Subscription, error) {
	return s.repo.ListSubscriptionsByPriceRange(ctx, min, max)
}
