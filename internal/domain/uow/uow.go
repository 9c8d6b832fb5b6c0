package uow

import (
	"context"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/credit"
	"lenddesk-backend/internal/domain/kyc"
	"lenddesk-backend/internal/domain/offer"
	"lenddesk-backend/internal/domain/partner"
	"lenddesk-backend/internal/domain/schedule"
)

// Repos is the repository set bound to one transaction.
type Repos struct {
	Applications application.Repository
	Partners     partner.Repository
	Offers       offer.Repository
	KYC          kyc.Repository
	Credit       credit.Repository
	Schedules    schedule.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in. This is
	// the per-application serialization point for lifecycle commands.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
