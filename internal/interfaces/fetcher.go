package interfaces

import "context"

// FetchOptions configures a single Fetcher request.
type FetchOptions struct {
	Timeout    int // seconds; not read by HTTPFetcher, which applies its configured request timeout to every request
	AcceptJSON bool
	NeedsJS    bool
	Headers    map[string]string
}

// FetchResponse is the Fetcher's successful result.
type FetchResponse struct {
	Status  int
	Headers map[string][]string
	Body    []byte
}

// Fetcher is the polite HTTP boundary every other component routes through:
// rate limiting, robots.txt, UA rotation, retry/backoff, and the optional
// JS-rendering fallback all live behind this one contract.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, method string, opts FetchOptions) (*FetchResponse, error)
}

// Renderer renders a page with a headless browser and returns the
// document's HTML. A no-op implementation is substituted when JavaScript
// rendering is disabled in configuration, per the Fetcher's JS-fallback
// design note.
type Renderer interface {
	RenderPage(ctx context.Context, rawURL string) (string, error)
	Available() bool
}
