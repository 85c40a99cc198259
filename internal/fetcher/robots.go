// -----------------------------------------------------------------------
// Robots.txt cache - keyed by scheme+host, TTL-bound. Fetches are not
// single-flighted: concurrent misses for one host each fetch robots.txt,
// and a failed fetch is not cached, so the next call fetches again.
// -----------------------------------------------------------------------

package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"github.com/ternarybob/arbor"
)

type robotsEntry struct {
	group     *robotstxt.Group
	fetchedAt time.Time
}

// RobotsCache fetches and caches robots.txt per scheme+host.
type RobotsCache struct {
	mu     sync.Mutex
	cache  map[string]*robotsEntry
	ttl    time.Duration
	client *http.Client
	logger arbor.ILogger
}

func NewRobotsCache(ttl time.Duration, client *http.Client, logger arbor.ILogger) *RobotsCache {
	return &RobotsCache{
		cache:  make(map[string]*robotsEntry),
		ttl:    ttl,
		client: client,
		logger: logger,
	}
}

// Allowed reports whether rawURL may be fetched under the rules of the
// "*" group of that host's robots.txt; userAgent is not consulted, so
// agent-specific groups are ignored. A fetch failure is treated as allowed (fail-open), matching
// the common crawler convention of not blocking on an unreachable robots
// endpoint.
func (rc *RobotsCache) Allowed(ctx context.Context, rawURL, userAgent string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	key := u.Scheme + "://" + u.Host

	group := rc.groupFor(ctx, key, u)
	if group == nil {
		return true
	}
	return group.Test(u.Path)
}

func (rc *RobotsCache) groupFor(ctx context.Context, key string, u *url.URL) *robotstxt.Group {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	if ok && time.Since(entry.fetchedAt) < rc.ttl {
		rc.mu.Unlock()
		return entry.group
	}
	rc.mu.Unlock()

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}

	resp, err := rc.client.Do(req)
	if err != nil {
		rc.logger.Debug().Err(err).Str("url", robotsURL).Msg("robots.txt fetch failed, failing open")
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil
	}

	robotsData, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}
	group := robotsData.FindGroup("*")

	rc.mu.Lock()
	rc.cache[key] = &robotsEntry{group: group, fetchedAt: time.Now()}
	rc.mu.Unlock()

	return group
}
