package lifecycle

import (
	"context"
	"errors"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/credit"
	"lenddesk-backend/internal/domain/offer"
	"lenddesk-backend/internal/domain/schedule"
	"lenddesk-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Decision string

const (
	DecisionApproved       Decision = "approved"
	DecisionRejected       Decision = "rejected"
	DecisionCounterOffered Decision = "counter_offered"
)

type DecisionInput struct {
	ApplicationID string
	Decision      Decision
	Notes         string

	// Concrete terms; required for approve (and for the admin re-offer leg
	// of a counter cycle, which goes through approve as well).
	Amount      int64
	TenorMonths int

	// Partner floor; required for counter_offered.
	MinDeposit *int64
	MinTenor   *int
}

type TermsDTO struct {
	Kind           string `json:"kind"`
	Amount         int64  `json:"amount,omitempty"`
	TenorMonths    int    `json:"tenor_months,omitempty"`
	MinDeposit     *int64 `json:"min_deposit,omitempty"`
	MinTenor       *int   `json:"min_tenor,omitempty"`
	MonthlyPayment int64  `json:"monthly_payment,omitempty"`
}

type DecisionDTO struct {
	ApplicationID  string    `json:"application_id"`
	ApprovalStatus string    `json:"approval_status"`
	CounterPending bool      `json:"counter_pending"`
	CounterRounds  int       `json:"counter_rounds"`
	Terms          *TermsDTO `json:"terms,omitempty"`
}

func termsDTO(t *offer.Terms) *TermsDTO {
	if t == nil {
		return nil
	}
	return &TermsDTO{
		Kind:           string(t.Kind),
		Amount:         t.Amount,
		TenorMonths:    t.TenorMonths,
		MinDeposit:     t.MinDeposit,
		MinTenor:       t.MinTenor,
		MonthlyPayment: t.MonthlyPayment,
	}
}

// RecordDecision applies a partner decision: approve, reject, or
// counter-offer. A counter-offer stores the partner's floor and flags the
// application; the admin then re-offers concrete terms through an approve
// decision, which must respect the floor and the credit limit.
func (u *Usecase) RecordDecision(ctx context.Context, in DecisionInput) (*DecisionDTO, error) {
	var dto *DecisionDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domain.Application) error {
		if a.SendStatus != domain.StatusCompleted || a.ApprovalStatus != domain.StatusPending {
			return domain.ErrIllegalTransition
		}

		switch in.Decision {
		case DecisionRejected:
			return u.reject(ctx, r, a, &dto)
		case DecisionCounterOffered:
			return u.counterOffer(ctx, r, a, in, &dto)
		case DecisionApproved:
			return u.approve(ctx, r, a, in, &dto)
		default:
			return domain.ErrIllegalTransition
		}
	})
	if err != nil {
		return nil, notFound(err)
	}

	u.log.Info("partner decision recorded",
		zap.String("application_id", dto.ApplicationID),
		zap.String("decision", string(in.Decision)),
		zap.String("approval_status", dto.ApprovalStatus))
	return dto, nil
}

func (u *Usecase) reject(ctx context.Context, r uow.Repos, a *domain.Application, out **DecisionDTO) error {
	a.ApprovalStatus = domain.StatusRejected
	a.CounterPending = false
	a.Advance(u.now())
	if err := r.Applications.Save(ctx, a); err != nil {
		return err
	}
	*out = &DecisionDTO{
		ApplicationID:  a.ApplicationID,
		ApprovalStatus: string(a.ApprovalStatus),
		CounterRounds:  a.CounterRounds,
	}
	return nil
}

func (u *Usecase) counterOffer(ctx context.Context, r uow.Repos, a *domain.Application, in DecisionInput, out **DecisionDTO) error {
	if in.MinDeposit == nil && in.MinTenor == nil {
		return domain.ErrInvalidTerms
	}

	if a.CounterRounds+1 > u.maxCounterRounds {
		// negotiation exhausted
		return u.reject(ctx, r, a, out)
	}

	floor := &offer.Terms{
		ApplicationID: a.ID,
		Kind:          offer.KindFloor,
		MinDeposit:    in.MinDeposit,
		MinTenor:      in.MinTenor,
		Notes:         in.Notes,
	}
	if err := r.Offers.Create(ctx, floor); err != nil {
		return err
	}

	a.CounterPending = true
	a.CounterRounds++
	a.Advance(u.now())
	if err := r.Applications.Save(ctx, a); err != nil {
		return err
	}
	*out = &DecisionDTO{
		ApplicationID:  a.ApplicationID,
		ApprovalStatus: string(a.ApprovalStatus),
		CounterPending: true,
		CounterRounds:  a.CounterRounds,
		Terms:          termsDTO(floor),
	}
	return nil
}

func (u *Usecase) approve(ctx context.Context, r uow.Repos, a *domain.Application, in DecisionInput, out **DecisionDTO) error {
	if in.Amount <= 0 || in.TenorMonths <= 0 {
		return domain.ErrInvalidTerms
	}

	terms := &offer.Terms{
		ApplicationID: a.ID,
		Kind:          offer.KindOffer,
		Amount:        in.Amount,
		TenorMonths:   in.TenorMonths,
		Notes:         in.Notes,
	}

	if a.CounterPending {
		floor, err := r.Offers.Latest(ctx, a.ID, offer.KindFloor)
		if err != nil && !errors.Is(err, offer.ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && !terms.MeetsFloor(floor) {
			return domain.ErrInvalidTerms
		}
	}

	// credit ceiling: unscored applicants fall to the floor limit
	limit := credit.LimitForScore(0)
	if cp, err := r.Credit.GetByApplicantID(ctx, a.ApplicantID); err == nil {
		limit = credit.LimitForScore(cp.Score)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, credit.ErrNotFound) {
		return err
	}
	if in.Amount > limit {
		return domain.ErrExceedsLimit
	}

	total := schedule.TotalRepayable(in.Amount, a.Rate)
	terms.MonthlyPayment = total / int64(in.TenorMonths)
	if err := r.Offers.Create(ctx, terms); err != nil {
		return err
	}

	a.ApprovalStatus = domain.StatusCompleted
	a.CounterPending = false
	a.Advance(u.now())
	if err := r.Applications.Save(ctx, a); err != nil {
		return err
	}
	*out = &DecisionDTO{
		ApplicationID:  a.ApplicationID,
		ApprovalStatus: string(a.ApprovalStatus),
		CounterRounds:  a.CounterRounds,
		Terms:          termsDTO(terms),
	}
	return nil
}
