package http

import (
	"errors"
	"net/http"

	appDomain "lenddesk-backend/internal/domain/application"
	partnerDomain "lenddesk-backend/internal/domain/partner"
	schedDomain "lenddesk-backend/internal/domain/schedule"
)

// statusFor maps engine sentinels to HTTP codes. Everything the engine
// rejects is recoverable: the console re-renders current state.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, partnerDomain.ErrNotFound),
		errors.Is(err, schedDomain.ErrNotFound),
		errors.Is(err, schedDomain.ErrUnknownInstallment):
		return http.StatusNotFound
	case errors.Is(err, appDomain.ErrGateNotSatisfied),
		errors.Is(err, appDomain.ErrAlreadyRouted),
		errors.Is(err, appDomain.ErrAlreadyDisbursed),
		errors.Is(err, appDomain.ErrIllegalTransition),
		errors.Is(err, schedDomain.ErrAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, appDomain.ErrExceedsLimit),
		errors.Is(err, appDomain.ErrInvalidTerms):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
