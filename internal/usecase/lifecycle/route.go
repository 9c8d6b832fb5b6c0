package lifecycle

import (
	"context"
	"errors"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/partner"
	"lenddesk-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoutingDTO struct {
	ApplicationID string    `json:"application_id"`
	PartnerID     string    `json:"partner_id"`
	PartnerName   string    `json:"partner_name"`
	RoutedAt      time.Time `json:"routed_at"`
	KYCStatus     string    `json:"kyc_status"`
	SendStatus    string    `json:"send_status"`
}

// SubmitToPartner routes the application to a funding partner. The KYC gate
// must pass first; routing while a partner decision is still pending fails.
// Re-routing after a rejection records a new routing event and preserves
// the history.
func (u *Usecase) SubmitToPartner(ctx context.Context, applicationID, partnerID string) (*RoutingDTO, error) {
	var dto *RoutingDTO

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.ApprovalStatus == domain.StatusCompleted {
			// already approved; the next legal command is disburse
			return domain.ErrIllegalTransition
		}

		if a.KYCStatus != domain.StatusCompleted {
			p, err := r.KYC.GetByApplicantID(ctx, a.ApplicantID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				return domain.ErrGateNotSatisfied
			}
			if len(p.Missing()) > 0 {
				return domain.ErrGateNotSatisfied
			}
			a.KYCStatus = domain.StatusCompleted
		}

		if !a.Routable() {
			return domain.ErrAlreadyRouted
		}

		pt, err := r.Partners.GetByPartnerID(ctx, partnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return partner.ErrNotFound
			}
			return err
		}

		now := u.now()
		if err := r.Partners.CreateRouting(ctx, &partner.RoutingRecord{
			ApplicationID: a.ID,
			PartnerID:     pt.ID,
			RoutedAt:      now,
		}); err != nil {
			return err
		}

		a.SendStatus = domain.StatusCompleted
		// a fresh routing reopens the partner decision with a full
		// counter-offer allowance; rounds are per negotiation, not per
		// application
		a.ApprovalStatus = domain.StatusPending
		a.CounterPending = false
		a.CounterRounds = 0
		a.Advance(now)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = &RoutingDTO{
			ApplicationID: a.ApplicationID,
			PartnerID:     pt.PartnerID,
			PartnerName:   pt.Name,
			RoutedAt:      now,
			KYCStatus:     string(a.KYCStatus),
			SendStatus:    string(a.SendStatus),
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	u.log.Info("application routed to partner",
		zap.String("application_id", dto.ApplicationID),
		zap.String("partner_id", dto.PartnerID))
	return dto, nil
}
