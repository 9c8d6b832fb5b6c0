package credit

import "context"

type Repository interface {
	GetByApplicantID(ctx context.Context, applicantID string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
