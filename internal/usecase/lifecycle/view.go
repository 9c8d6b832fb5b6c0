package lifecycle

import (
	"context"
	"errors"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/kyc"
	"lenddesk-backend/internal/domain/offer"
	"lenddesk-backend/internal/domain/schedule"
	"lenddesk-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type RoutedPartnerDTO struct {
	PartnerID string    `json:"partner_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	RoutedAt  time.Time `json:"routed_at"`
}

type OverdueSummaryDTO struct {
	OverdueCount   int             `json:"overdue_count"`
	MaxDaysOverdue int             `json:"max_days_overdue"`
	NextDue        *InstallmentDTO `json:"next_due,omitempty"`
}

// ViewDTO is the read model the operator console renders per application.
type ViewDTO struct {
	ApplicationID string    `json:"application_id"`
	ApplicantID   string    `json:"applicant_id"`
	Amount        int64     `json:"amount"`
	TenorMonths   int       `json:"tenor_months"`
	Rate          float64   `json:"rate"`
	CreatedAt     time.Time `json:"created_at"`

	KYCStatus          string `json:"kyc_status"`
	SendStatus         string `json:"send_status"`
	ApprovalStatus     string `json:"approval_status"`
	DisbursementStatus string `json:"disbursement_status"`
	CounterPending     bool   `json:"counter_pending"`
	CounterRounds      int    `json:"counter_rounds"`

	RoutedPartner     *RoutedPartnerDTO  `json:"routed_partner,omitempty"`
	MissingGateFields []kyc.Field        `json:"missing_gate_fields,omitempty"`
	CurrentTerms      *TermsDTO          `json:"current_terms,omitempty"`
	FloorTerms        *TermsDTO          `json:"floor_terms,omitempty"`
	Schedule          *ScheduleDTO       `json:"schedule,omitempty"`
	OverdueSummary    *OverdueSummaryDTO `json:"overdue_summary,omitempty"`
}

// View assembles the per-application read model in one consistent snapshot.
// The overdue summary is derived against the current clock on every call.
func (u *Usecase) View(ctx context.Context, applicationID string) (*ViewDTO, error) {
	var dto *ViewDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return err
		}

		dto = &ViewDTO{
			ApplicationID:      a.ApplicationID,
			ApplicantID:        a.ApplicantID,
			Amount:             a.Amount,
			TenorMonths:        a.TenorMonths,
			Rate:               a.Rate,
			CreatedAt:          a.CreatedAt,
			KYCStatus:          string(a.KYCStatus),
			SendStatus:         string(a.SendStatus),
			ApprovalStatus:     string(a.ApprovalStatus),
			DisbursementStatus: string(a.DisbursementStatus),
			CounterPending:     a.CounterPending,
			CounterRounds:      a.CounterRounds,
		}

		if a.KYCStatus != domain.StatusCompleted {
			if p, err := r.KYC.GetByApplicantID(ctx, a.ApplicantID); err == nil {
				dto.MissingGateFields = p.Missing()
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				dto.MissingGateFields = kyc.AllFields()
			} else {
				return err
			}
		}

		if a.SendStatus == domain.StatusCompleted {
			rec, err := r.Partners.LatestRouting(ctx, a.ID)
			switch {
			case err == nil:
				dto.RoutedPartner = &RoutedPartnerDTO{RoutedAt: rec.RoutedAt}
				if rec.Partner != nil {
					dto.RoutedPartner.PartnerID = rec.Partner.PartnerID
					dto.RoutedPartner.Name = rec.Partner.Name
					dto.RoutedPartner.Code = rec.Partner.Code
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// send marked completed before any record existed; render
				// the statuses without the partner block
			default:
				return err
			}
		}

		if t, err := r.Offers.Latest(ctx, a.ID, offer.KindOffer); err == nil {
			dto.CurrentTerms = termsDTO(t)
		} else if !errors.Is(err, offer.ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if a.CounterPending {
			if t, err := r.Offers.Latest(ctx, a.ID, offer.KindFloor); err == nil {
				dto.FloorTerms = termsDTO(t)
			} else if !errors.Is(err, offer.ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if a.DisbursementStatus == domain.StatusCompleted {
			s, err := r.Schedules.GetByApplicationID(ctx, a.ID)
			if err != nil {
				return err
			}
			dto.Schedule = scheduleDTO(a.ApplicationID, s)

			rep := schedule.Overdue(s, u.now())
			sum := &OverdueSummaryDTO{OverdueCount: rep.OverdueCount, MaxDaysOverdue: rep.MaxDaysOverdue}
			if rep.NextDue != nil {
				sum.NextDue = &InstallmentDTO{
					Seq:     rep.NextDue.Seq,
					DueDate: rep.NextDue.DueDate,
					Amount:  rep.NextDue.Amount,
				}
			}
			dto.OverdueSummary = sum
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return dto, nil
}
