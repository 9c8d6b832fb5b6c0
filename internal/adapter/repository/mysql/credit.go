package mysql

import (
	"context"

	creditDomain "lenddesk-backend/internal/domain/credit"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditRepository struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) *CreditRepository { return &CreditRepository{db: db} }

func (r *CreditRepository) GetByApplicantID(ctx context.Context, applicantID string) (*creditDomain.Profile, error) {
	var out creditDomain.Profile
	res := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).First(&out)
	return &out, res.Error
}

func (r *CreditRepository) Upsert(ctx context.Context, p *creditDomain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "applicant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).
		Create(p).Error
}
