package offermock

import (
	"context"

	domain "lenddesk-backend/internal/domain/offer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying offer.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, t *domain.Terms) error
	LatestFn  func(ctx context.Context, applicationNumericID uint64, kind domain.Kind) (*domain.Terms, error)
	HistoryFn func(ctx context.Context, applicationNumericID uint64) ([]domain.Terms, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Terms) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Latest(ctx context.Context, applicationNumericID uint64, kind domain.Kind) (*domain.Terms, error) {
	if m.LatestFn != nil {
		return m.LatestFn(ctx, applicationNumericID, kind)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) History(ctx context.Context, applicationNumericID uint64) ([]domain.Terms, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, applicationNumericID)
	}
	return nil, nil
}
