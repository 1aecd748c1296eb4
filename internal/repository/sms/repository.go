package sms

import (
	"context"
	"time"

	"creatim-shop/internal/domain"
)

type Repository interface {
	Store(ctx context.Context, customerPhone int64, content string) error
	ListUnsent(ctx context.Context) ([]domain.SMSMessage, error)
	MarkSent(ctx context.Context, id int64, at time.Time) error
}
