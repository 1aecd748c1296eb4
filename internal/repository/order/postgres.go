package order

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

func (r *postgresRepo) CreateFromCart(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
UPDATE carts SET submitted = TRUE, date_modified = now()
WHERE session = $1 AND pwd = $2
`, in.Session, in.Pwd)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	articles := in.Articles
	if articles == nil {
		articles = []domain.OrderArticle{}
	}
	subscriptions := in.Subscriptions
	if subscriptions == nil {
		subscriptions = []domain.OrderSubscription{}
	}

	ord := domain.Order{
		OrderNumber:   in.OrderNumber,
		CustomerPhone: in.CustomerPhone,
		Status:        domain.StatusNeedsProcessing,
		Price:         in.Price,
		Articles:      articles,
		Subscriptions: subscriptions,
		SessionID:     in.Session,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO orders (order_number, customer_phone, status, price, articles, subscription_pkg, session_id, date_created)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING id, date_created
`, ord.OrderNumber, ord.CustomerPhone, ord.Status, ord.Price, articles, subscriptions, ord.SessionID).Scan(&ord.ID, &ord.DateCreated)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, order_number, customer_phone, status, price, articles, subscription_pkg, session_id, date_created
FROM orders
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, q, id)
	ord, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ord, nil
}

func (r *postgresRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	const q = `
SELECT id, order_number, customer_phone, status, price, articles, subscription_pkg, session_id, date_created
FROM orders
WHERE session_id = $1
ORDER BY date_created DESC
`
	rows, err := r.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *postgresRepo) ListProcessed(ctx context.Context, sessionID string, phone *string) ([]domain.Order, error) {
	q := `
SELECT id, order_number, customer_phone, status, price, articles, subscription_pkg, session_id, date_created
FROM orders
WHERE session_id = $1 AND status = $2
`
	args := []interface{}{sessionID, domain.StatusProcessed}
	if phone != nil {
		q += ` AND customer_phone = $3`
		args = append(args, *phone)
	}
	q += ` ORDER BY date_created DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var ord domain.Order
	if err := row.Scan(
		&ord.ID,
		&ord.OrderNumber,
		&ord.CustomerPhone,
		&ord.Status,
		&ord.Price,
		&ord.Articles,
		&ord.Subscriptions,
		&ord.SessionID,
		&ord.DateCreated,
	); err != nil {
		return nil, err
	}
	return &ord, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
