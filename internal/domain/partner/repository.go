package partner

import "context"

type Repository interface {
	Create(ctx context.Context, p *Partner) error
	GetByPartnerID(ctx context.Context, partnerID string) (*Partner, error)
	List(ctx context.Context) ([]Partner, error)

	// Routing history (append-only).
	CreateRouting(ctx context.Context, r *RoutingRecord) error
	LatestRouting(ctx context.Context, applicationNumericID uint64) (*RoutingRecord, error)
}
