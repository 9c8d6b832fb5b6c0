package credit

import (
	"context"
	"errors"

	"lenddesk-backend/internal/domain/credit"

	"gorm.io/gorm"
)

type Usecase struct{ repo credit.Repository }

func NewUsecase(r credit.Repository) *Usecase { return &Usecase{repo: r} }

type Result struct {
	Score     int   `json:"score"`
	LoanLimit int64 `json:"loan_limit"`
}

// Score returns the applicant's score and the derived loan limit. An
// unscored applicant gets score 0 and the floor limit, not an error.
func (u *Usecase) Score(ctx context.Context, applicantID string) (*Result, error) {
	p, err := u.repo.GetByApplicantID(ctx, applicantID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, credit.ErrNotFound):
		return &Result{Score: 0, LoanLimit: credit.LimitForScore(0)}, nil
	case err != nil:
		return nil, err
	}
	return &Result{Score: p.Score, LoanLimit: credit.LimitForScore(p.Score)}, nil
}

// SetScore upserts a back-office supplied score.
func (u *Usecase) SetScore(ctx context.Context, applicantID string, score int) (*Result, error) {
	if applicantID == "" {
		return nil, errors.New("missing applicant id")
	}
	if score < 0 || score > 100 {
		return nil, errors.New("score must be within 0..100")
	}
	p, err := u.repo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, credit.ErrNotFound) {
			return nil, err
		}
		p = &credit.Profile{ApplicantID: applicantID}
	}
	p.Score = score
	if err := u.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &Result{Score: p.Score, LoanLimit: credit.LimitForScore(p.Score)}, nil
}
