package mysql

import (
	"context"

	schedDomain "lenddesk-backend/internal/domain/schedule"

	"gorm.io/gorm"
)

type ScheduleRepository struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository { return &ScheduleRepository{db: db} }

// Create persists the schedule and its installments; gorm cascades the
// association insert in the same statement batch.
func (r *ScheduleRepository) Create(ctx context.Context, s *schedDomain.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleRepository) GetByApplicationID(ctx context.Context, applicationNumericID uint64) (*schedDomain.Schedule, error) {
	var out schedDomain.Schedule
	res := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("application_id = ?", applicationNumericID).
		First(&out)
	return &out, res.Error
}

func (r *ScheduleRepository) SaveInstallment(ctx context.Context, i *schedDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}
