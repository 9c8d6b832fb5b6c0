package creditmock

import (
	"context"

	domain "lenddesk-backend/internal/domain/credit"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying credit.Repository. An unfilled
// GetByApplicantIDFn behaves like an empty table.
type Repo struct {
	GetByApplicantIDFn func(ctx context.Context, applicantID string) (*domain.Profile, error)
	UpsertFn           func(ctx context.Context, p *domain.Profile) error
}

func (m *Repo) GetByApplicantID(ctx context.Context, applicantID string) (*domain.Profile, error) {
	if m.GetByApplicantIDFn != nil {
		return m.GetByApplicantIDFn(ctx, applicantID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Upsert(ctx context.Context, p *domain.Profile) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, p)
	}
	return nil
}
