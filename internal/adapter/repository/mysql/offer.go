package mysql

import (
	"context"
	"errors"

	offerDomain "lenddesk-backend/internal/domain/offer"

	"gorm.io/gorm"
)

type OfferRepository struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) *OfferRepository { return &OfferRepository{db: db} }

func (r *OfferRepository) Create(ctx context.Context, t *offerDomain.Terms) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *OfferRepository) Latest(ctx context.Context, applicationNumericID uint64, kind offerDomain.Kind) (*offerDomain.Terms, error) {
	var out offerDomain.Terms
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND kind = ?", applicationNumericID, kind).
		Order("created_at DESC, id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, offerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *OfferRepository) History(ctx context.Context, applicationNumericID uint64) ([]offerDomain.Terms, error) {
	var out []offerDomain.Terms
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
