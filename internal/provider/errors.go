package provider

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// IsAuthenticationError reports whether err is the API rejecting the
// credential (HTTP 401).
func IsAuthenticationError(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimitError reports whether err is the API throttling the caller
// (HTTP 429).
func IsRateLimitError(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	var apierr *anthropic.Error
	return errors.As(err, &apierr) && apierr.StatusCode == status
}
