package errcode

type Code string

const (
	SubscriberNotFound Code = "SUBSCRIBER_NOT_FOUND"
	PendingApproval    Code = "PENDING_APPROVAL"
	AlreadyApproved    Code = "ALREADY_APPROVED"
	NotSubscribed      Code = "NOT_SUBSCRIBED"
	UnknownService     Code = "UNKNOWN_SERVICE"

	FetchFailed Code = "FETCH_FAILED"
	NoFreeTerm  Code = "NO_FREE_TERM"

	// StateUnavailable - хранилище последних дат не ответило вовремя
	StateUnavailable Code = "STATE_UNAVAILABLE"

	Forbidden Code = "FORBIDDEN"
	Internal  Code = "INTERNAL_ERROR"
)
