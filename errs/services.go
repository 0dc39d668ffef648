package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-Party API & LLM Specific Errors
var (
	ErrRankerUnavailable = errors.New("application ranker unavailable")
	ErrMalformedRanking  = errors.New("malformed ranking response")
	ErrNotificationSend  = errors.New("notification send failed")
)

// NewRankerError wraps a failure from the AI application ranker. The
// ranking round trip has no retry or fallback; the caller surfaces this
// directly.
func NewRankerError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrRankerUnavailable,
		Details:    "The application ranking service did not return a result",
		Cause:      cause,
	}
}

// NewMalformedRankingError signals that the model returned JSON the
// service could not use.
func NewMalformedRankingError(reason string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrMalformedRanking,
		Details:    reason,
		Cause:      cause,
	}
}

// NewNotificationError wraps a failed email notification. Notifications
// are best-effort; this error is logged, never returned to the client.
func NewNotificationError(recipient string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrNotificationSend,
		Details:    fmt.Sprintf("Failed to notify %s", recipient),
		Cause:      cause,
	}
}

func IsRankerUnavailable(err error) bool {
	return errors.Is(err, ErrRankerUnavailable)
}

func IsMalformedRanking(err error) bool {
	return errors.Is(err, ErrMalformedRanking)
}
