package mysql

import (
	"context"

	kycDomain "lenddesk-backend/internal/domain/kyc"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KYCRepository struct{ db *gorm.DB }

func NewKYCRepository(db *gorm.DB) *KYCRepository { return &KYCRepository{db: db} }

func (r *KYCRepository) GetByApplicantID(ctx context.Context, applicantID string) (*kycDomain.Profile, error) {
	var out kycDomain.Profile
	res := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).First(&out)
	return &out, res.Error
}

func (r *KYCRepository) Upsert(ctx context.Context, p *kycDomain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "applicant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"identity_document_ref",
				"beneficiary_name",
				"beneficiary_relationship",
				"beneficiary_contact",
				"title_document_ref",
				"updated_at",
			}),
		}).
		Create(p).Error
}
