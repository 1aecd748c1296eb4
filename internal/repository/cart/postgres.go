package cart

import (
	"context"
	"errors"
	"time"

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

func (r *postgresRepo) Create(ctx context.Context, session, pwd string) error {
	const q = `
INSERT INTO carts (session, pwd, cart, submitted, date_modified)
VALUES ($1, $2, '', FALSE, now())
`
	_, err := r.pool.Exec(ctx, q, session, pwd)
	return err
}

func (r *postgresRepo) Exists(ctx context.Context, session, pwd string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM carts WHERE session = $1 AND pwd = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, session, pwd).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) Get(ctx context.Context, session, pwd string) (*domain.Cart, error) {
	const q = `
SELECT session, pwd, cart, phone, submitted, date_modified
FROM carts
WHERE session = $1 AND pwd = $2
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, q, session, pwd).Scan(
		&cart.Session,
		&cart.Pwd,
		&cart.Content,
		&cart.Phone,
		&cart.Submitted,
		&cart.DateModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) IsSubmitted(ctx context.Context, session, pwd string) (bool, error) {
	const q = `SELECT submitted FROM carts WHERE session = $1 AND pwd = $2`
	var submitted bool
	err := r.pool.QueryRow(ctx, q, session, pwd).Scan(&submitted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unknown credentials read as "not submitted".
			return false, nil
		}
		return false, err
	}
	return submitted, nil
}

// Update writes new cart content. A submitted cart is first reset in a
// separate statement, then written, both inside one transaction, so a
// submitted cart never rejects the write.
func (r *postgresRepo) Update(ctx context.Context, session, pwd, content string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var submitted bool
	err = tx.QueryRow(ctx, `
SELECT submitted FROM carts WHERE session = $1 AND pwd = $2 FOR UPDATE
`, session, pwd).Scan(&submitted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if submitted {
		if _, err := tx.Exec(ctx, `
UPDATE carts SET submitted = FALSE, cart = '', date_modified = now()
WHERE session = $1 AND pwd = $2
`, session, pwd); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
UPDATE carts SET cart = $1, date_modified = now()
WHERE session = $2 AND pwd = $3
`, content, session, pwd); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) ResetSubmitted(ctx context.Context, session, pwd string) error {
	const q = `
UPDATE carts SET submitted = FALSE, cart = '', date_modified = now()
WHERE session = $1 AND pwd = $2
`
	cmd, err := r.pool.Exec(ctx, q, session, pwd)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (r *postgresRepo) SetPhone(ctx context.Context, session, pwd string, phone *int64) error {
	const q = `UPDATE carts SET phone = $1 WHERE session = $2 AND pwd = $3`
	cmd, err := r.pool.Exec(ctx, q, phone, session, pwd)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (r *postgresRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM carts WHERE date_modified < $1`
	cmd, err := r.pool.Exec(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
