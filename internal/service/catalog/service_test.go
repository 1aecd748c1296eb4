package catalog

import (
	"context"
	"errors"
	"testing"

	"creatim-shop/internal/domain"
)

type stubRepo struct {
	article        *domain.Article
	articleErr     error
	sub            *domain.Subscription
	subErr         error
	articles       []domain.Article
	searched       string
	listCalled     bool
	subs           []domain.Subscription
	lastPhysical   *bool
	subListCalled  bool
	subProbeCalled bool
	lastMin        int64
	lastMax        int64
	rangeCalled    bool
}

func (s *stubRepo) GetArticleByID(_ context.Context, _ int64) (*domain.Article, error) {
	return s.article, s.articleErr
}

func (s *stubRepo) ListArticles(_ context.Context) ([]domain.Article, error) {
	s.listCalled = true
	return s.articles, nil
}

func (s *stubRepo) SearchArticles(_ context.Context, term string) ([]domain.Article, error) {
	s.searched = term
	return s.articles, nil
}

func (s *stubRepo) ListArticlesByPriceRange(_ context.Context, min, max int64) ([]domain.Article, error) {
	s.rangeCalled = true
	s.lastMin, s.lastMax = min, max
	return s.articles, nil
}

func (s *stubRepo) GetSubscriptionByID(_ context.Context, _ int64) (*domain.Subscription, error) {
	s.subProbeCalled = true
	return s.sub, s.subErr
}

func (s *stubRepo) ListSubscriptions(_ context.Context) ([]domain.Subscription, error) {
	s.subListCalled = true
	return s.subs, nil
}

func (s *stubRepo) ListSubscriptionsByType(_ context.Context, physical bool) ([]domain.Subscription, error) {
	s.lastPhysical = &physical
	return s.subs, nil
}

func (s *stubRepo) ListSubscriptionsByPriceRange(_ context.Context, min, max int64) ([]domain.Subscription, error) {
	s.rangeCalled = true
	s.lastMin, s.lastMax = min, max
	return s.subs, nil
}

func TestResolveArticleWins(t *testing.T) {
	repo := &stubRepo{
		article: &domain.Article{ID: 4, Name: "Mug", Price: 500},
		sub:     &domain.Subscription{ID: 4, Price: 900},
	}
	svc := &Service{repo: repo}
	res, err := svc.Resolve(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != KindArticle || res.Article == nil || res.Article.Name != "Mug" {
		t.Fatalf("unexpected resolution: %+v", res)
	}
	if repo.subProbeCalled {
		t.Fatalf("subscription catalog must not be probed when the article matches")
	}
}

func TestResolveFallsBackToSubscription(t *testing.T) {
	repo := &stubRepo{
		articleErr: domain.ErrNotFound,
		sub:        &domain.Subscription{ID: 9, Description: "monthly", Price: 1200},
	}
	svc := &Service{repo: repo}
	res, err := svc.Resolve(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != KindSubscription || res.Subscription == nil || res.Subscription.Price != 1200 {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestResolveUnresolved(t *testing.T) {
	repo := &stubRepo{articleErr: domain.ErrNotFound, subErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	res, err := svc.Resolve(context.Background(), 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != KindUnresolved || res.Article != nil || res.Subscription != nil {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestResolveStorageErrorPropagates(t *testing.T) {
	repo := &stubRepo{articleErr: errors.New("conn reset")}
	svc := &Service{repo: repo}
	if _, err := svc.Resolve(context.Background(), 1); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}

func TestArticlesDispatchesSearch(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	if _, err := svc.Articles(context.Background(), "wool"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.searched != "wool" || repo.listCalled {
		t.Fatalf("expected search path, got list=%v searched=%q", repo.listCalled, repo.searched)
	}
	if _, err := svc.Articles(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.listCalled {
		t.Fatalf("expected list path for empty term")
	}
}

func TestArticlesByPriceRangePassesBounds(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	if _, err := svc.ArticlesByPriceRange(context.Background(), 100, 900); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.rangeCalled || repo.lastMin != 100 || repo.lastMax != 900 {
		t.Fatalf("bounds lost: called=%v min=%d max=%d", repo.rangeCalled, repo.lastMin, repo.lastMax)
	}
}

func TestSubscriptionsByPriceRangePassesBounds(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	if _, err := svc.SubscriptionsByPriceRange(context.Background(), 500, 2000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.rangeCalled || repo.lastMin != 500 || repo.lastMax != 2000 {
		t.Fatalf("bounds lost: called=%v min=%d max=%d", repo.rangeCalled, repo.lastMin, repo.lastMax)
	}
}

func TestSubscriptionsPhysicalFilter(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	physical := true
	if _, err := svc.Subscriptions(context.Background(), &physical); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPhysical == nil || !*repo.lastPhysical {
		t.Fatalf("expected physical filter passed through")
	}
	if _, err := svc.Subscriptions(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.subListCalled {
		t.Fatalf("expected unfiltered list for nil filter")
	}
}
