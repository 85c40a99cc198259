// -----------------------------------------------------------------------
// Engine implements interfaces.Prober: candidate-token x ATS-registry
// search. Bounded parallel fan-out, cancel-on-first-hit, priority
// tie-break, optional short-TTL cache.
// -----------------------------------------------------------------------

package probe

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

type cacheKey struct {
	ats   string
	token string
}

type cacheEntry struct {
	hit       bool
	board     *models.JobBoard
	expiresAt time.Time
}

// Engine is the concrete Prober. MaxConcurrent bounds in-flight probe
// requests across the whole (token x provider) search space for one
// Probe call.
type Engine struct {
	registry      interfaces.Registry
	fetcher       interfaces.Fetcher
	maxConcurrent int
	cacheTTL      time.Duration

	mu    sync.Mutex
	cache map[cacheKey]cacheEntry

	logger arbor.ILogger
}

func NewEngine(registry interfaces.Registry, fetcher interfaces.Fetcher, maxConcurrent int, cacheTTL time.Duration, logger arbor.ILogger) *Engine {
	return &Engine{
		registry:      registry,
		fetcher:       fetcher,
		maxConcurrent: maxConcurrent,
		cacheTTL:      cacheTTL,
		cache:         make(map[cacheKey]cacheEntry),
		logger:        logger,
	}
}

type probeJob struct {
	tokenIdx int
	token    string
	provider interfaces.ATSProvider
}

type probeOutcome struct {
	job   probeJob
	hit   bool
	board *models.JobBoard
	err   error
}

// Probe tries each candidate token against every registered ATS provider,
// stopping at the first confirmed hit. Providers are tried in registry
// (priority) order within a token, and tokens are tried in the order
// given (candidates is expected exact-slug-first).
func (e *Engine) Probe(ctx context.Context, companyName string, candidates []string) (*interfaces.ProbeResult, error) {
	providers := e.registry.Providers()
	if len(candidates) == 0 || len(providers) == 0 {
		return &interfaces.ProbeResult{Hit: false}, nil
	}

	jobs := make([]probeJob, 0, len(candidates)*len(providers))
	for ti, tok := range candidates {
		for _, p := range providers {
			jobs = append(jobs, probeJob{tokenIdx: ti, token: tok, provider: p})
		}
	}

	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, e.maxConcurrent)
	results := make(chan probeOutcome, len(jobs))
	var wg sync.WaitGroup

	for _, job := range jobs {
		if probeCtx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(j probeJob) {
			defer wg.Done()
			defer func() { <-sem }()
			if probeCtx.Err() != nil {
				return
			}
			hit, board, err := e.probeOne(probeCtx, j)
			select {
			case results <- probeOutcome{job: j, hit: hit, board: board, err: err}:
			case <-probeCtx.Done():
			}
		}(job)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var hits []probeOutcome
	var errCount, total int
	var lastErr error
	for outcome := range results {
		total++
		if outcome.hit {
			hits = append(hits, outcome)
			cancel() // stop remaining probes for this (name, token set)
			continue
		}
		if outcome.err != nil {
			errCount++
			lastErr = outcome.err
		}
	}

	if len(hits) == 0 {
		// Every probe errored (fetch/parse failure) rather than resolving
		// a definitive miss: surface this as a source error so the
		// scheduler can count it separately from a confirmed non-hit.
		if total > 0 && errCount == total {
			return nil, fmt.Errorf("probe: all %d probes errored for %q, last error: %w", total, companyName, lastErr)
		}
		return &interfaces.ProbeResult{Hit: false}, nil
	}

	// Tie-break: lowest token index first (exact-slug-first ordering),
	// then lowest registry priority.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].job.tokenIdx != hits[j].job.tokenIdx {
			return hits[i].job.tokenIdx < hits[j].job.tokenIdx
		}
		return hits[i].job.provider.Priority() < hits[j].job.provider.Priority()
	})
	winner := hits[0]

	return &interfaces.ProbeResult{
		Hit:     true,
		ATSType: winner.job.provider.Name(),
		Token:   winner.job.token,
		Board:   winner.board,
	}, nil
}

func (e *Engine) probeOne(ctx context.Context, job probeJob) (bool, *models.JobBoard, error) {
	key := cacheKey{ats: job.provider.Name(), token: job.token}
	if entry, ok := e.cachedResult(key); ok {
		return entry.hit, entry.board, nil
	}

	url := job.provider.ProbeURL(job.token)
	resp, err := e.fetcher.Fetch(ctx, url, "GET", interfaces.FetchOptions{AcceptJSON: true, Headers: map[string]string{"X-ATS-Provider": job.provider.Name()}})
	if err != nil {
		return false, nil, fmt.Errorf("probe %s/%s: %w", job.provider.Name(), job.token, err)
	}
	if resp.Status < 200 || resp.Status >= 300 {
		e.storeResult(key, false, nil)
		return false, nil, nil
	}

	board, ok, err := job.provider.ParseProbe(resp.Body)
	if err != nil {
		return false, nil, fmt.Errorf("probe %s/%s: %w", job.provider.Name(), job.token, err)
	}
	e.storeResult(key, ok, board)
	return ok, board, nil
}

func (e *Engine) cachedResult(key cacheKey) (cacheEntry, bool) {
	if e.cacheTTL <= 0 {
		return cacheEntry{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return cacheEntry{}, false
	}
	return entry, true
}

func (e *Engine) storeResult(key cacheKey, hit bool, board *models.JobBoard) {
	if e.cacheTTL <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache[key] = cacheEntry{hit: hit, board: board, expiresAt: time.Now().Add(e.cacheTTL)}
}

var _ interfaces.Prober = (*Engine)(nil)
