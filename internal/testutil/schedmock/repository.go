package schedmock

import (
	"context"

	domain "lenddesk-backend/internal/domain/schedule"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying schedule.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, s *domain.Schedule) error
	GetByApplicationIDFn func(ctx context.Context, applicationNumericID uint64) (*domain.Schedule, error)
	SaveInstallmentFn    func(ctx context.Context, i *domain.Installment) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Schedule) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationNumericID uint64) (*domain.Schedule, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationNumericID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) SaveInstallment(ctx context.Context, i *domain.Installment) error {
	if m.SaveInstallmentFn != nil {
		return m.SaveInstallmentFn(ctx, i)
	}
	return nil
}
