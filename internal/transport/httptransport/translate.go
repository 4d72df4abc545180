package httptransport

import (
	"context"
	"errors"
	"net/http"

	"github.com/NastyaGoryachaya/slot-notifier/internal/ports/errcode"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errcode.StateUnavailable
	default:
		return errcode.Internal
	}
}

func statusFor(code errcode.Code) int {
	switch code {
	case errcode.StateUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(code errcode.Code) string {
	switch code {
	case errcode.StateUnavailable:
		return "state_unavailable"
	default:
		return "internal_server_error"
	}
}
