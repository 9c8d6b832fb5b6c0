package lifecycle

import (
	"errors"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultMaxCounterRounds bounds the counter-offer cycle; exceeding it
// forces a rejection.
const DefaultMaxCounterRounds = 3

// Usecase is the lifecycle state machine: one entry point per operator
// command, each running inside a row-locked transaction so a command either
// fully applies or leaves the composite status untouched.
type Usecase struct {
	uow              uow.UnitOfWork
	log              *zap.Logger
	maxCounterRounds int

	// test seam
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger, maxCounterRounds int) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	if maxCounterRounds <= 0 {
		maxCounterRounds = DefaultMaxCounterRounds
	}
	return &Usecase{
		uow:              tx,
		log:              log,
		maxCounterRounds: maxCounterRounds,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// notFound maps the storage-level miss onto the domain sentinel so handlers
// never see gorm.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
