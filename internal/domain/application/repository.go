package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row (SELECT ... FOR UPDATE);
	// only meaningful inside a transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	GetOpenByApplicantID(ctx context.Context, applicantID string) (*Application, error)
	Save(ctx context.Context, a *Application) error
}
