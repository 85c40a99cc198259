// -----------------------------------------------------------------------
// HTTPFetcher is the concrete interfaces.Fetcher: every outbound request
// in the system funnels through here for rate limiting, robots.txt,
// UA rotation, retry/backoff and an optional JS-render fallback.
// -----------------------------------------------------------------------

package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/common"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// HTTPFetcher implements interfaces.Fetcher over net/http, layering in the
// crawler-politeness policies configured by FetcherConfig.
type HTTPFetcher struct {
	client      *http.Client
	rateLimiter *RateLimiter
	robots      *RobotsCache
	retry       *RetryPolicy
	uaRotator   *UserAgentRotator
	renderer    interfaces.Renderer
	cfg         common.FetcherConfig
	logger      arbor.ILogger
}

// NewHTTPFetcher wires the Fetcher's component parts from cfg. renderer may
// be nil, in which case a NoopRenderer is substituted and JS-requiring
// fetches fail with models.ErrRequiresJS.
func NewHTTPFetcher(cfg common.FetcherConfig, renderer interfaces.Renderer, logger arbor.ILogger) *HTTPFetcher {
	if renderer == nil {
		renderer = NoopRenderer{}
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		rateLimiter: NewRateLimiter(cfg.DefaultRatePerSec, cfg.ProviderRates),
		robots:      NewRobotsCache(cfg.RobotsCacheTTL, &http.Client{Timeout: 10 * time.Second}, logger),
		retry:       NewRetryPolicy(cfg.MaxRetries, cfg.InitialBackoff, cfg.MaxBackoff, cfg.BackoffMultiplier),
		uaRotator:   NewUserAgentRotator(cfg.UserAgents, cfg.UserAgentRotation),
		renderer:    renderer,
		cfg:         cfg,
		logger:      logger,
	}
}

// Fetch performs a single logical request: robots.txt check, rate-limit
// wait, retry loop with exponential backoff, and an optional headless
// render when opts.NeedsJS is set.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL, method string, opts interfaces.FetchOptions) (*interfaces.FetchResponse, error) {
	userAgent := f.uaRotator.Next()

	if f.cfg.FollowRobotsTxt && !f.robots.Allowed(ctx, rawURL, userAgent) {
		return nil, models.NewFetchError(models.ErrPolicyBlocked, rawURL, 0, nil)
	}

	if opts.NeedsJS {
		return f.fetchRendered(ctx, rawURL)
	}

	var lastErr error
	providerKey := opts.Headers["X-ATS-Provider"]

	for attempt := 1; attempt <= f.retry.MaxAttempts; attempt++ {
		if err := f.rateLimiter.Wait(ctx, rawURL, providerKey); err != nil {
			return nil, models.NewFetchError(models.ErrCancelled, rawURL, 0, err)
		}

		resp, retryAfter, err := f.doOnce(ctx, rawURL, method, userAgent, opts)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		statusCode := 0
		var fe *models.FetchError
		if asFetchError(err, &fe) {
			statusCode = fe.StatusCode
		}
		if !f.retry.ShouldRetry(attempt, statusCode, err) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, models.NewFetchError(models.ErrCancelled, rawURL, 0, ctx.Err())
		case <-time.After(f.retry.Backoff(attempt, retryAfter)):
		}
	}

	return nil, lastErr
}

func (f *HTTPFetcher) doOnce(ctx context.Context, rawURL, method, userAgent string, opts interfaces.FetchOptions) (*interfaces.FetchResponse, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, 0, models.NewFetchError(models.ErrParse, rawURL, 0, err)
	}
	req.Header.Set("User-Agent", userAgent)
	if opts.AcceptJSON {
		req.Header.Set("Accept", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, models.NewFetchError(models.ErrNetwork, rawURL, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodySize))
	if err != nil {
		return nil, 0, models.NewFetchError(models.ErrNetwork, rawURL, resp.StatusCode, err)
	}

	retryAfter := 0
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		fmt.Sscanf(ra, "%d", &retryAfter)
	}

	if resp.StatusCode >= 500 {
		return nil, retryAfter, models.NewFetchError(models.ErrHTTP5xx, rawURL, resp.StatusCode, nil)
	}
	if resp.StatusCode >= 400 {
		return nil, retryAfter, models.NewFetchError(models.ErrHTTP4xx, rawURL, resp.StatusCode, nil)
	}

	return &interfaces.FetchResponse{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    body,
	}, retryAfter, nil
}

func (f *HTTPFetcher) fetchRendered(ctx context.Context, rawURL string) (*interfaces.FetchResponse, error) {
	if !f.renderer.Available() {
		return nil, models.NewFetchError(models.ErrRequiresJS, rawURL, 0, nil)
	}
	html, err := f.renderer.RenderPage(ctx, rawURL)
	if err != nil {
		return nil, models.NewFetchError(models.ErrRequiresJS, rawURL, 0, err)
	}
	return &interfaces.FetchResponse{
		Status:  http.StatusOK,
		Headers: map[string][]string{"Content-Type": {"text/html"}},
		Body:    []byte(html),
	}, nil
}

func asFetchError(err error, target **models.FetchError) bool {
	fe, ok := err.(*models.FetchError)
	if !ok {
		return false
	}
	*target = fe
	return true
}
