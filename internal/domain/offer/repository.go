package offer

import "context"

type Repository interface {
	Create(ctx context.Context, t *Terms) error
	// Latest returns the newest row of the given kind, or ErrNotFound.
	Latest(ctx context.Context, applicationNumericID uint64, kind Kind) (*Terms, error)
	History(ctx context.Context, applicationNumericID uint64) ([]Terms, error)
}
