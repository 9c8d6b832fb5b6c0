package lifecycle

import (
	"context"
	"errors"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/offer"
	"lenddesk-backend/internal/domain/schedule"
	"lenddesk-backend/internal/domain/uow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InstallmentDTO struct {
	Seq     int        `json:"seq"`
	DueDate time.Time  `json:"due_date"`
	Amount  int64      `json:"amount"`
	Paid    bool       `json:"paid"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`
}

type ScheduleDTO struct {
	ScheduleID     string           `json:"schedule_id"`
	ApplicationID  string           `json:"application_id"`
	Principal      int64            `json:"principal"`
	TotalRepayable int64            `json:"total_repayable"`
	TenorMonths    int              `json:"tenor_months"`
	DisbursedAt    time.Time        `json:"disbursed_at"`
	Installments   []InstallmentDTO `json:"installments"`
}

func scheduleDTO(applicationID string, s *schedule.Schedule) *ScheduleDTO {
	out := &ScheduleDTO{
		ScheduleID:     s.ScheduleID.String(),
		ApplicationID:  applicationID,
		Principal:      s.Principal,
		TotalRepayable: s.TotalRepayable,
		TenorMonths:    s.TenorMonths,
		DisbursedAt:    s.DisbursedAt,
	}
	for _, i := range s.Installments {
		out.Installments = append(out.Installments, InstallmentDTO{
			Seq: i.Seq, DueDate: i.DueDate, Amount: i.Amount, Paid: i.Paid, PaidAt: i.PaidAt,
		})
	}
	return out
}

// Disburse releases approved funds and materializes the repayment schedule
// from the locked offer terms, exactly once. A repeat call fails with
// ErrAlreadyDisbursed and generates nothing.
func (u *Usecase) Disburse(ctx context.Context, applicationID string) (*ScheduleDTO, error) {
	var dto *ScheduleDTO

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.DisbursementStatus == domain.StatusCompleted {
			return domain.ErrAlreadyDisbursed
		}
		if a.ApprovalStatus != domain.StatusCompleted {
			return domain.ErrIllegalTransition
		}

		terms, err := r.Offers.Latest(ctx, a.ID, offer.KindOffer)
		if err != nil {
			if errors.Is(err, offer.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
				// approved without locked terms: data corruption, refuse
				return domain.ErrIllegalTransition
			}
			return err
		}

		now := u.now()
		s := &schedule.Schedule{
			ScheduleID:     uuid.New(),
			ApplicationID:  a.ID,
			Principal:      terms.Amount,
			TotalRepayable: schedule.TotalRepayable(terms.Amount, a.Rate),
			TenorMonths:    terms.TenorMonths,
			DisbursedAt:    now,
			Installments:   schedule.Generate(terms.Amount, terms.TenorMonths, now, a.Rate),
		}
		if err := r.Schedules.Create(ctx, s); err != nil {
			return err
		}

		a.DisbursementStatus = domain.StatusCompleted
		a.DisbursedAt = &s.DisbursedAt
		a.Advance(now)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = scheduleDTO(a.ApplicationID, s)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	u.log.Info("loan disbursed",
		zap.String("application_id", dto.ApplicationID),
		zap.String("schedule_id", dto.ScheduleID),
		zap.Int64("total_repayable", dto.TotalRepayable))
	return dto, nil
}
