package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"creatim-shop/internal/domain"
	cartrepo "creatim-shop/internal/repository/cart"
	"go.uber.org/zap"
)

// ErrInvalidPhone rejects phone values with any non-digit character.
var ErrInvalidPhone = errors.New("phone must contain only digits")

// maxCartAge is how long an untouched cart survives before cleanup.
const maxCartAge = 30 * 24 * time.Hour

type cartRepo interface {
	Create(ctx context.Context, session, pwd string) error
	Exists(ctx context.Context, session, pwd string) (bool, error)
	Get(ctx context.Context, session, pwd string) (*domain.Cart, error)
	IsSubmitted(ctx context.Context, session, pwd string) (bool, error)
	Update(ctx context.Context, session, pwd, content string) error
	ResetSubmitted(ctx context.Context, session, pwd string) error
	SetPhone(ctx context.Context, session, pwd string, phone *int64) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service owns the cart/session lifecycle: credential issuing, validation,
// cart reads and writes, phone association, and expiry cleanup.
type Service struct {
	repo   cartRepo
	logger *zap.SugaredLogger
}

func New(repo cartrepo.Repository, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Start issues a fresh credential pair and creates its empty cart row.
func (s *Service) Start(ctx context.Context) (Credentials, error) {
	sessionID, err := newToken()
	if err != nil {
		return Credentials{}, err
	}
	pwd, err := newToken()
	if err != nil {
		return Credentials{}, err
	}
	if err := s.repo.Create(ctx, sessionID, pwd); err != nil {
		s.logger.Errorw("create cart row", "error", err)
		return Credentials{}, err
	}
	return Credentials{SessionID: sessionID, Pwd: pwd}, nil
}

// Validate reports whether a cart row exists for the exact pair.
func (s *Service) Validate(ctx context.Context, sessionID, pwd string) (bool, error) {
	return s.repo.Exists(ctx, sessionID, pwd)
}

// GetCart returns the cart row with its blob decoded into Items. A blob that
// fails to decode leaves Items empty rather than failing the read; the blob
// is stored verbatim from the client and is not validated on write.
func (s *Service) GetCart(ctx context.Context, sessionID, pwd string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID, pwd)
	if err != nil {
		return nil, err
	}
	items, err := domain.ParseCartLines(cart.Content)
	if err != nil {
		s.logger.Debugw("cart blob not parseable", "session", sessionID, "error", err)
	} else {
		cart.Items = items
	}
	return cart, nil
}

// IsSubmitted reads false both for a not-submitted cart and for unknown
// credentials.
func (s *Service) IsSubmitted(ctx context.Context, sessionID, pwd string) (bool, error) {
	return s.repo.IsSubmitted(ctx, sessionID, pwd)
}

// UpdateCart stores the serialized content verbatim. A submitted cart is
// reset first, then written; submitted-ness never rejects an update.
func (s *Service) UpdateCart(ctx context.Context, sessionID, pwd, content string) error {
	return s.repo.Update(ctx, sessionID, pwd, content)
}

// ResetSubmitted clears the submitted flag and the cart content, allowing a
// new order on the same credentials.
func (s *Service) ResetSubmitted(ctx context.Context, sessionID, pwd string) error {
	return s.repo.ResetSubmitted(ctx, sessionID, pwd)
}

// UpdatePhone attaches a digits-only phone to the cart. An empty phone clears
// the field.
func (s *Service) UpdatePhone(ctx context.Context, sessionID, pwd, phone string) error {
	if phone == "" {
		return s.repo.SetPhone(ctx, sessionID, pwd, nil)
	}
	if !digitsOnly(phone) {
		return ErrInvalidPhone
	}
	n, err := strconv.ParseInt(phone, 10, 64)
	if err != nil {
		return ErrInvalidPhone
	}
	return s.repo.SetPhone(ctx, sessionID, pwd, &n)
}

// CleanupOldCarts deletes carts unmodified for 30 days and returns the count.
func (s *Service) CleanupOldCarts(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteOlderThan(ctx, time.Now().Add(-maxCartAge))
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Infow("removed stale carts", "count", count)
	}
	return count, nil
}

func digitsOnly(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
