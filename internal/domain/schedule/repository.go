package schedule

import "context"

type Repository interface {
	// Create persists the schedule and its installments in one shot.
	Create(ctx context.Context, s *Schedule) error
	// GetByApplicationID loads the schedule with installments ordered by seq.
	GetByApplicationID(ctx context.Context, applicationNumericID uint64) (*Schedule, error)
	SaveInstallment(ctx context.Context, i *Installment) error
}
