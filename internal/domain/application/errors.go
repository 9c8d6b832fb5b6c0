package application

import "errors"

// Command failures. All are recoverable: the caller re-renders current
// state; the transaction that produced them has been rolled back.
var (
	ErrNotFound          = errors.New("application not found")
	ErrGateNotSatisfied  = errors.New("kyc gate not satisfied")
	ErrAlreadyRouted     = errors.New("application already routed to an active partner")
	ErrExceedsLimit      = errors.New("offer amount exceeds credit limit")
	ErrInvalidTerms      = errors.New("offer terms below partner floor")
	ErrAlreadyDisbursed  = errors.New("application already disbursed")
	ErrIllegalTransition = errors.New("command not permitted in current status")
)
