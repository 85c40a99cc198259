package interfaces

import (
	"context"

	"github.com/ternarybob/hireradar/internal/models"
)

// ATSProvider is one row of the capability table the Probe engine and
// Collector both read: polymorphism by table, not by inheritance.
type ATSProvider interface {
	// Name identifies the provider, e.g. "greenhouse". Used as the Fetcher
	// rate-limit key and stored as Company.ATSType.
	Name() string

	// Priority orders tie-breaks when multiple ATSes hit the same token;
	// lower values win.
	Priority() int

	// ProbeURL returns the canonical URL that, if the board exists for
	// token, returns a parseable listing payload.
	ProbeURL(token string) string

	// ParseProbe interprets a probe response body. ok=false means "board
	// does not exist on this token" (a definitive miss, not an error).
	ParseProbe(body []byte) (board *models.JobBoard, ok bool, err error)

	// ListURL returns the first page URL for full collection. Some
	// providers reuse ProbeURL; others need separate pagination params.
	ListURL(token string, page int) string

	// ParseListing parses one page of the collection response, returning
	// jobs found and whether a further page exists.
	ParseListing(body []byte) (jobs []models.RawJob, hasNextPage bool, err error)
}

// Registry looks providers up by name and iterates them in priority order.
type Registry interface {
	Providers() []ATSProvider
	ByName(name string) (ATSProvider, bool)
}

// Prober runs the candidate-token x ATS-registry search.
type Prober interface {
	Probe(ctx context.Context, companyName string, candidates []string) (*ProbeResult, error)
}

// ProbeResult is what a successful Probe.Probe call resolves to.
type ProbeResult struct {
	Hit     bool
	ATSType string
	Token   string
	Board   *models.JobBoard
}
