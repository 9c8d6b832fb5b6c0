package mysql

import (
	"context"

	partnerDomain "lenddesk-backend/internal/domain/partner"

	"gorm.io/gorm"
)

type PartnerRepository struct{ db *gorm.DB }

func NewPartnerRepository(db *gorm.DB) *PartnerRepository { return &PartnerRepository{db: db} }

func (r *PartnerRepository) Create(ctx context.Context, p *partnerDomain.Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PartnerRepository) GetByPartnerID(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
	var out partnerDomain.Partner
	res := r.db.WithContext(ctx).Where("partner_id = ?", partnerID).First(&out)
	return &out, res.Error
}

func (r *PartnerRepository) List(ctx context.Context) ([]partnerDomain.Partner, error) {
	var out []partnerDomain.Partner
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *PartnerRepository) CreateRouting(ctx context.Context, rec *partnerDomain.RoutingRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PartnerRepository) LatestRouting(ctx context.Context, applicationNumericID uint64) (*partnerDomain.RoutingRecord, error) {
	var out partnerDomain.RoutingRecord
	res := r.db.WithContext(ctx).
		Preload("Partner").
		Where("application_id = ?", applicationNumericID).
		Order("routed_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}
