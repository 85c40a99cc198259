// -----------------------------------------------------------------------
// Headless-browser JS rendering fallback, pooling chromedp browser
// contexts across requests. A no-op Renderer substitutes when JavaScript
// rendering is disabled in configuration.
// -----------------------------------------------------------------------

package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"
)

// ChromeDPPoolConfig configures the headless-browser pool.
type ChromeDPPoolConfig struct {
	PoolSize    int
	WaitTime    time.Duration
	NavTimeout  time.Duration
	Headless    bool
}

// ChromeDPPool renders pages via a small pool of headless Chrome
// allocator contexts, reused across requests to avoid per-fetch browser
// startup cost.
type ChromeDPPool struct {
	mu        sync.Mutex
	allocCtx  context.Context
	allocStop context.CancelFunc
	config    ChromeDPPoolConfig
	logger    arbor.ILogger
	available bool
}

// NewChromeDPPool initializes the allocator. It does not look for or start
// Chrome, so the pool always reports itself available; a missing or
// failing browser surfaces as a RenderPage error, which HTTPFetcher
// reports as models.ErrRequiresJS.
func NewChromeDPPool(cfg ChromeDPPoolConfig, logger arbor.ILogger) *ChromeDPPool {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	pool := &ChromeDPPool{
		allocCtx:  allocCtx,
		allocStop: cancel,
		config:    cfg,
		logger:    logger,
		available: true,
	}
	return pool
}

func (p *ChromeDPPool) Available() bool {
	return p != nil && p.available
}

// RenderPage navigates to rawURL in a fresh tab from the pooled allocator,
// waits for JS to settle, and returns the rendered document's outer HTML.
func (p *ChromeDPPool) RenderPage(ctx context.Context, rawURL string) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("headless renderer unavailable")
	}

	tabCtx, cancel := chromedp.NewContext(p.allocCtx)
	defer cancel()

	navCtx, navCancel := context.WithTimeout(tabCtx, p.config.NavTimeout)
	defer navCancel()

	var html string
	err := chromedp.Run(navCtx,
		chromedp.Navigate(rawURL),
		chromedp.Sleep(p.config.WaitTime),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp render failed: %w", err)
	}
	return html, nil
}

// Close releases the pooled allocator.
func (p *ChromeDPPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.allocStop != nil {
		p.allocStop()
	}
}

// NoopRenderer is substituted when JavaScript rendering is disabled in
// configuration; RenderPage always fails with RequiresJS semantics.
type NoopRenderer struct{}

func (NoopRenderer) Available() bool { return false }

func (NoopRenderer) RenderPage(ctx context.Context, rawURL string) (string, error) {
	return "", fmt.Errorf("headless rendering not available for %s", rawURL)
}
