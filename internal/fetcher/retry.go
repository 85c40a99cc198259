// -----------------------------------------------------------------------
// Retry/backoff policy: exponential backoff with jitter, honoring
// Retry-After on 429.
// -----------------------------------------------------------------------

package fetcher

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/ternarybob/hireradar/internal/models"
)

// RetryPolicy controls how many times and how long the Fetcher waits
// between retries of a transient failure.
type RetryPolicy struct {
	MaxAttempts          int
	InitialBackoff       time.Duration
	MaxBackoff           time.Duration
	BackoffMultiplier    float64
	RetryableStatusCodes map[int]bool
}

func NewRetryPolicy(maxAttempts int, initial, max time.Duration, multiplier float64) *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:       maxAttempts,
		InitialBackoff:    initial,
		MaxBackoff:        max,
		BackoffMultiplier: multiplier,
		RetryableStatusCodes: map[int]bool{
			http.StatusTooManyRequests:    true,
			http.StatusInternalServerError: true,
			http.StatusBadGateway:         true,
			http.StatusServiceUnavailable: true,
			http.StatusGatewayTimeout:     true,
		},
	}
}

// ShouldRetry reports whether attempt (1-indexed) should be retried given
// statusCode and/or err. 4xx other than 429 is terminal. A non-zero
// statusCode classifies by RetryableStatusCodes (so 429 retries alongside
// the 5xx codes even though models.ErrHTTP4xx.IsRetryable() is false for
// the non-429 case); absent a status code, a wrapped *models.FetchError is
// classified by its Kind via IsRetryable(), and a bare, non-FetchError
// transport error is treated as unconditionally retryable.
func (p *RetryPolicy) ShouldRetry(attempt, statusCode int, err error) bool {
	if attempt >= p.MaxAttempts {
		return false
	}
	if statusCode != 0 {
		return p.RetryableStatusCodes[statusCode]
	}
	var fe *models.FetchError
	if errors.As(err, &fe) {
		return fe.Kind.IsRetryable()
	}
	return err != nil
}

// Backoff computes the delay before the next attempt: exponential with
// ±30% jitter, honoring Retry-After when provided (seconds, or zero to
// ignore).
func (p *RetryPolicy) Backoff(attempt int, retryAfterSeconds int) time.Duration {
	if retryAfterSeconds > 0 {
		return time.Duration(retryAfterSeconds) * time.Second
	}

	backoff := float64(p.InitialBackoff)
	for i := 1; i < attempt; i++ {
		backoff *= p.BackoffMultiplier
	}
	if backoff > float64(p.MaxBackoff) {
		backoff = float64(p.MaxBackoff)
	}

	jitter := backoff * 0.3 * (2*rand.Float64() - 1)
	result := time.Duration(backoff + jitter)
	if result < 0 {
		result = p.InitialBackoff
	}
	return result
}
