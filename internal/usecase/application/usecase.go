package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	ApplicantID string  `json:"applicant_id"`
	Amount      int64   `json:"amount"`
	TenorMonths int     `json:"tenor_months"`
	Rate        float64 `json:"rate"`
}

type ApplicationDTO struct {
	ApplicationID      string    `json:"application_id"`
	ApplicantID        string    `json:"applicant_id"`
	Amount             int64     `json:"amount"`
	TenorMonths        int       `json:"tenor_months"`
	Rate               float64   `json:"rate"`
	KYCStatus          string    `json:"kyc_status"`
	SendStatus         string    `json:"send_status"`
	ApprovalStatus     string    `json:"approval_status"`
	DisbursementStatus string    `json:"disbursement_status"`
	CreatedAt          time.Time `json:"created_at"`
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:      a.ApplicationID,
		ApplicantID:        a.ApplicantID,
		Amount:             a.Amount,
		TenorMonths:        a.TenorMonths,
		Rate:               a.Rate,
		KYCStatus:          string(a.KYCStatus),
		SendStatus:         string(a.SendStatus),
		ApprovalStatus:     string(a.ApprovalStatus),
		DisbursementStatus: string(a.DisbursementStatus),
		CreatedAt:          a.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	if in.ApplicantID == "" || len(in.ApplicantID) != 32 {
		return nil, errors.New("invalid applicant id")
	}
	if in.Amount <= 0 || in.TenorMonths <= 0 || in.Rate < 0 {
		return nil, errors.New("invalid requested terms")
	}

	// One open application per applicant: a previous application must reach
	// a terminal state (rejected or disbursed) before a new one is accepted.
	open, err := u.repo.GetOpenByApplicantID(ctx, in.ApplicantID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("applicant %s already has an open application: %s", in.ApplicantID, open.ApplicationID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	a := &domain.Application{
		ApplicationID:      id.NewID32(),
		ApplicantID:        in.ApplicantID,
		Amount:             in.Amount,
		TenorMonths:        in.TenorMonths,
		Rate:               in.Rate,
		KYCStatus:          domain.StatusPending,
		SendStatus:         domain.StatusPending,
		ApprovalStatus:     domain.StatusPending,
		DisbursementStatus: domain.StatusPending,
		StateUpdatedAt:     time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}
