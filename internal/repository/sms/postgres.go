package sms

import (
	"context"
	"time"

	"creatim-shop/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Store(ctx context.Context, customerPhone int64, content string) error {
	const q = `INSERT INTO sms_log (customer_phone, content, created) VALUES ($1, $2, now())`
	_, err := r.pool.Exec(ctx, q, customerPhone, content)
	return err
}

func (r *postgresRepo) ListUnsent(ctx context.Context) ([]domain.SMSMessage, error) {
	const q = `
SELECT id, customer_phone, content, created, sent
FROM sms_log
WHERE sent IS NULL
ORDER BY created ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.SMSMessage
	for rows.Next() {
		var m domain.SMSMessage
		if err := rows.Scan(&m.ID, &m.CustomerPhone, &m.Content, &m.Created, &m.Sent); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *postgresRepo) MarkSent(ctx context.Context, id int64, at time.Time) error {
	const q = `UPDATE sms_log SET sent = $1 WHERE id = $2`
	_, err := r.pool.Exec(ctx, q, at, id)
	return err
}
