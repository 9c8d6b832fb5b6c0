package partnermock

import (
	"context"

	domain "lenddesk-backend/internal/domain/partner"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying partner.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Partner) error
	GetByPartnerIDFn func(ctx context.Context, partnerID string) (*domain.Partner, error)
	ListFn           func(ctx context.Context) ([]domain.Partner, error)
	CreateRoutingFn  func(ctx context.Context, r *domain.RoutingRecord) error
	LatestRoutingFn  func(ctx context.Context, applicationNumericID uint64) (*domain.RoutingRecord, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Partner) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPartnerID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	if m.GetByPartnerIDFn != nil {
		return m.GetByPartnerIDFn(ctx, partnerID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Partner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CreateRouting(ctx context.Context, r *domain.RoutingRecord) error {
	if m.CreateRoutingFn != nil {
		return m.CreateRoutingFn(ctx, r)
	}
	return nil
}

// An unfilled LatestRoutingFn behaves like an empty routing history.
func (m *Repo) LatestRouting(ctx context.Context, applicationNumericID uint64) (*domain.RoutingRecord, error) {
	if m.LatestRoutingFn != nil {
		return m.LatestRoutingFn(ctx, applicationNumericID)
	}
	return nil, gorm.ErrRecordNotFound
}
