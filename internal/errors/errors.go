package errors

import "errors"

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrAlreadyApproved    = errors.New("subscriber already approved")
	ErrNotApproved        = errors.New("subscriber not approved")
	ErrNotSubscribed      = errors.New("subscriber has no subscription")
	ErrUnknownService     = errors.New("unknown service")
	ErrFetchFailed        = errors.New("availability fetch failed")
	ErrInternal           = errors.New("internal error")
)
