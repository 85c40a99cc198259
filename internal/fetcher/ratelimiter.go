// -----------------------------------------------------------------------
// Per-host rate limiting - a token bucket per host, refilled at a
// provider-specific rate.
// -----------------------------------------------------------------------

package fetcher

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter holds one token bucket per host, shared across all concurrent
// tasks targeting that host.
type RateLimiter struct {
	mu           sync.RWMutex
	limiters     map[string]*rate.Limiter
	defaultRate  float64
	providerRate map[string]float64
}

func NewRateLimiter(defaultRatePerSec float64, providerRates map[string]float64) *RateLimiter {
	return &RateLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRatePerSec,
		providerRate: providerRates,
	}
}

// Wait blocks until a token is available for rawURL's host, or ctx is done.
// providerKey, if non-empty, selects a provider-specific rate (e.g.
// "greenhouse"); otherwise the host itself keys the bucket at the default
// rate.
func (rl *RateLimiter) Wait(ctx context.Context, rawURL, providerKey string) error {
	limiter := rl.limiterFor(rawURL, providerKey)
	return limiter.Wait(ctx)
}

func (rl *RateLimiter) limiterFor(rawURL, providerKey string) *rate.Limiter {
	key := providerKey
	if key == "" {
		key = hostOf(rawURL)
	}

	rl.mu.RLock()
	l, ok := rl.limiters[key]
	rl.mu.RUnlock()
	if ok {
		return l
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if l, ok := rl.limiters[key]; ok {
		return l
	}

	ratePerSec := rl.defaultRate
	if r, ok := rl.providerRate[providerKey]; ok {
		ratePerSec = r
	}
	l = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	rl.limiters[key] = l
	return l
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
