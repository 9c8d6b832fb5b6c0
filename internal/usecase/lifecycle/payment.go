package lifecycle

import (
	"context"
	"errors"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/schedule"
	"lenddesk-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentDTO struct {
	ApplicationID string         `json:"application_id"`
	Installment   InstallmentDTO `json:"installment"`
	Outstanding   int            `json:"outstanding"`
}

// RecordPayment settles one installment by sequence number.
func (u *Usecase) RecordPayment(ctx context.Context, applicationID string, seq int) (*PaymentDTO, error) {
	var dto *PaymentDTO

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.DisbursementStatus != domain.StatusCompleted {
			return domain.ErrIllegalTransition
		}

		s, err := r.Schedules.GetByApplicationID(ctx, a.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return schedule.ErrNotFound
			}
			return err
		}

		ins, err := schedule.MarkPaid(s, seq, u.now())
		if err != nil {
			return err
		}
		if err := r.Schedules.SaveInstallment(ctx, ins); err != nil {
			return err
		}

		outstanding := 0
		for _, i := range s.Installments {
			if !i.Paid {
				outstanding++
			}
		}
		dto = &PaymentDTO{
			ApplicationID: a.ApplicationID,
			Installment: InstallmentDTO{
				Seq: ins.Seq, DueDate: ins.DueDate, Amount: ins.Amount, Paid: ins.Paid, PaidAt: ins.PaidAt,
			},
			Outstanding: outstanding,
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	u.log.Info("installment paid",
		zap.String("application_id", dto.ApplicationID),
		zap.Int("seq", dto.Installment.Seq),
		zap.Int("outstanding", dto.Outstanding))
	return dto, nil
}
