// -----------------------------------------------------------------------
// Expander pulls candidate companies from the Source registry, filters
// and slugifies each name, and inserts untested Seeds.
// -----------------------------------------------------------------------

package seedexpander

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/common"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

var angleQuoteRe = regexp.MustCompile(`[<>"'` + "`" + `]`)

var stopWordsOnly = map[string]bool{
	"the": true, "a": true, "and": true, "or": true, "inc": true, "llc": true,
}

// Expander runs one seed-expansion pass over the source registry.
type Expander struct {
	fetcher   interfaces.Fetcher
	seeds     interfaces.SeedStore
	sources   []Source
	minLength int
	maxLength int
	logger    arbor.ILogger
}

func NewExpander(fetcher interfaces.Fetcher, seeds interfaces.SeedStore, sources []Source, minLength, maxLength int, logger arbor.ILogger) *Expander {
	return &Expander{
		fetcher:   fetcher,
		seeds:     seeds,
		sources:   sources,
		minLength: minLength,
		maxLength: maxLength,
		logger:    logger,
	}
}

// ExpansionStats summarizes one pass across all sources.
type ExpansionStats struct {
	SourcesRun    int
	SourcesFailed int
	NamesSeen     int
	SeedsInserted int
}

// Run walks every source in registry order, jittering between sources so
// fetches do not burst simultaneously. A per-source failure is isolated
// and does not abort the pass.
func (e *Expander) Run(ctx context.Context) ExpansionStats {
	var stats ExpansionStats

	for i, src := range e.sources {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			jitter := time.Duration(rand.Intn(2000)) * time.Millisecond
			select {
			case <-ctx.Done():
				break
			case <-time.After(jitter):
			}
		}

		stats.SourcesRun++
		names, err := e.namesFor(ctx, src)
		if err != nil {
			stats.SourcesFailed++
			e.logger.Warn().Err(err).Str("source", src.Name).Msg("seedexpander: source failed, continuing")
			continue
		}

		inserted := e.insertNames(ctx, src, names)
		stats.NamesSeen += len(names)
		stats.SeedsInserted += inserted
	}

	return stats
}

func (e *Expander) namesFor(ctx context.Context, src Source) ([]string, error) {
	if src.Kind == KindStaticList {
		return src.Extract(nil), nil
	}

	resp, err := e.fetcher.Fetch(ctx, src.URL, "GET", interfaces.FetchOptions{})
	if err != nil {
		return nil, err
	}
	return src.Extract(resp.Body), nil
}

func (e *Expander) insertNames(ctx context.Context, src Source, names []string) int {
	inserted := 0
	for _, raw := range names {
		name, ok := e.sanitize(raw)
		if !ok {
			continue
		}

		exists, err := e.seeds.Exists(ctx, name)
		if err != nil {
			e.logger.Warn().Err(err).Str("company_name", name).Msg("seedexpander: dedup check failed")
			continue
		}
		if exists {
			continue
		}

		seed := models.NewSeed(name, common.Slugify(name), src.Name, src.Tier)
		if err := e.seeds.Insert(ctx, seed); err != nil {
			e.logger.Warn().Err(err).Str("company_name", name).Msg("seedexpander: insert failed")
			continue
		}
		inserted++
	}
	return inserted
}

// sanitize applies the filter rules: strip angle brackets/quotes, reject
// stop-words-only names, lengths outside [minLength,maxLength], and names
// with no letter at all.
func (e *Expander) sanitize(raw string) (string, bool) {
	name := angleQuoteRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if len(name) < e.minLength || len(name) > e.maxLength {
		return "", false
	}
	if stopWordsOnly[strings.ToLower(name)] {
		return "", false
	}
	hasLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return "", false
	}
	return name, true
}
