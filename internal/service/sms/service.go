package sms

import (
	"context"
	"time"

	"creatim-shop/internal/domain"
	smsrepo "creatim-shop/internal/repository/sms"
	"go.uber.org/zap"
)

type repo interface {
	Store(ctx context.Context, customerPhone int64, content string) error
	ListUnsent(ctx context.Context) ([]domain.SMSMessage, error)
	MarkSent(ctx context.Context, id int64, at time.Time) error
}

// Service queues SMS notifications for an external sender. Storing is best
// effort: a failure is logged and reported as false, never raised, so order
// submission cannot fail on a notification.
type Service struct {
	repo   repo
	logger *zap.SugaredLogger
}

func New(repo smsrepo.Repository, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Store queues one message; returns false if it could not be stored.
func (s *Service) Store(ctx context.Context, customerPhone int64, content string) bool {
	if err := s.repo.Store(ctx, customerPhone, content); err != nil {
		s.logger.Errorw("store sms", "phone", customerPhone, "error", err)
		return false
	}
	return true
}

// Unsent lists queued messages oldest-first for the dispatcher.
func (s *Service) Unsent(ctx context.Context) ([]domain.SMSMessage, error) {
	return s.repo.ListUnsent(ctx)
}

// MarkSent stamps a message after the dispatcher delivered it.
func (s *Service) MarkSent(ctx context.Context, id int64) error {
	return s.repo.MarkSent(ctx, id, time.Now())
}
