package mysql

import (
	"context"

	appDomain "lenddesk-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

// GetByApplicationIDForUpdate takes a row lock; commands call this through
// the UnitOfWork so each application's lifecycle is serialized.
func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no FOR UPDATE; its write transactions serialize anyway
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := q.Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

// GetOpenByApplicantID returns the applicant's newest application that has
// not reached a terminal state (rejected or disbursed).
func (r *ApplicationRepository) GetOpenByApplicantID(ctx context.Context, applicantID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("applicant_id = ? AND approval_status <> ? AND disbursement_status <> ?",
			applicantID, appDomain.StatusRejected, appDomain.StatusCompleted).
		Order("state_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}
