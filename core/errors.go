package core

import "errors"

// Sentinel errors for webhook authentication failures. Wrap them with
// fmt.Errorf("%w: ...") so callers can classify with errors.Is. Both reject
// the request before any external call is made.
var (
	ErrInvalidSignature = errors.New("invalid request signature")
	ErrStaleTimestamp   = errors.New("request timestamp outside freshness window")
)

// IsAuthError checks if an error means the request failed webhook
// authentication
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidSignature) || errors.Is(err, ErrStaleTimestamp)
}
