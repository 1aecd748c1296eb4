package catalog

import (
	"context"
	"errors"

	"creatim-shop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	const q = `
SELECT id, name, description, price, supplier_email, date_created
FROM articles
WHERE id = $1
`
	var a domain.Article
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.Price, &a.SupplierEmail, &a.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) ListArticles(ctx context.Context) ([]domain.Article, error) {
	const q = `
SELECT id, name, description, price, supplier_email, date_created
FROM articles
ORDER BY date_created DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (r *postgresRepo) SearchArticles(ctx context.Context, term string) ([]domain.Article, error) {
	const q = `
SELECT id, name, description, price, supplier_email, date_created
FROM articles
WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
ORDER BY date_created DESC
`
	rows, err := r.pool.Query(ctx, q, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (r *postgresRepo) ListArticlesByPriceRange(ctx context.Context, min, max int64) ([]domain.Article, error) {
	const q = `
SELECT id, name, description, price, supplier_email, date_created
FROM articles
WHERE price BETWEEN $1 AND $2
ORDER BY price ASC
`
	rows, err := r.pool.Query(ctx, q, min, max)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (r *postgresRepo) GetSubscriptionByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	const q = `
SELECT id, description, price, physical, date_created
FROM subscription
WHERE id = $1
`
	var s domain.Subscription
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Description, &s.Price, &s.Physical, &s.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	const q = `
SELECT id, description, price, physical, date_created
FROM subscription
ORDER BY price ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *postgresRepo) ListSubscriptionsByType(ctx context.Context, physical bool) ([]domain.Subscription, error) {
	const q = `
SELECT id, description, price, physical, date_created
FROM subscription
WHERE physical = $1
ORDER BY price ASC
`
	rows, err := r.pool.Query(ctx, q, physical)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *postgresRepo) ListSubscriptionsByPriceRange(ctx context.Context, min, max int64) ([]domain.Subscription, error) {
	const q = `
SELECT id, description, price, physical, date_created
FROM subscription
WHERE price BETWEEN $1 AND $2
ORDER BY price ASC
`
	rows, err := r.pool.Query(ctx, q, min, max)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func collectArticles(rows pgx.Rows) ([]domain.Article, error) {
	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.SupplierEmail, &a.DateCreated); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

func collectSubscriptions(rows pgx.Rows) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.ID, &s.Description, &s.Price, &s.Physical, &s.DateCreated); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}
