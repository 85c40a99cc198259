// -----------------------------------------------------------------------
// Service is the Scheduler/Orchestrator: three recurring activities under
// a single mutual-exclusion invariant, registered with robfig/cron.
// -----------------------------------------------------------------------

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/collector"
	"github.com/ternarybob/hireradar/internal/common"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
	"github.com/ternarybob/hireradar/internal/normalizer"
	"github.com/ternarybob/hireradar/internal/probe"
	"github.com/ternarybob/hireradar/internal/reconciler"
	"github.com/ternarybob/hireradar/internal/seedexpander"
)

// Config carries the scheduler-relevant knobs from common.Config so this
// package does not import common.Config directly.
type Config struct {
	DiscoveryCron           string
	DiscoveryBatchSize      int
	RefreshCron             string
	RefreshIntervalHours    int
	MaintenanceCron         string
	SnapshotRetentionDays   int
	JobArchiveRetentionDays int
	MaxCandidateVariants    int
}

// Service owns the cron schedule and the single-active-pass invariant:
// at most one of {discovery, refresh, maintenance} runs at a time. A
// trigger arriving while another is active is dropped, not queued.
type Service struct {
	cfg     Config
	cron    *cron.Cron
	store   interfaces.StorageManager
	prober  interfaces.Prober
	collect *collector.Collector
	recon   *reconciler.Reconciler
	expand  *seedexpander.Expander
	logger  arbor.ILogger

	globalMu sync.Mutex // enforces the single-active-pass invariant
	state    *stateHolder

	onProgress models.ProgressFunc // optional external progress sink
}

func NewService(
	cfg Config,
	store interfaces.StorageManager,
	prober interfaces.Prober,
	collect *collector.Collector,
	recon *reconciler.Reconciler,
	expand *seedexpander.Expander,
	onProgress models.ProgressFunc,
	logger arbor.ILogger,
) *Service {
	return &Service{
		cfg:        cfg,
		cron:       cron.New(),
		store:      store,
		prober:     prober,
		collect:    collect,
		recon:      recon,
		expand:     expand,
		onProgress: onProgress,
		logger:     logger,
		state:      newStateHolder(),
	}
}

// Snapshot is the dashboard's sole window into the running core.
func (s *Service) Snapshot() CollectionState {
	return s.state.Snapshot()
}

// Start registers the three recurring jobs and starts the cron runner.
// Jobs re-register themselves on every process start; the schedule is not
// persisted between restarts.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.DiscoveryCron, func() {
		common.SafeGo(s.logger, "scheduler.discovery", func() {
			s.runExclusive(ModeDiscovery, s.runDiscovery)
		})
	}); err != nil {
		return fmt.Errorf("scheduler: register discovery: %w", err)
	}

	if _, err := s.cron.AddFunc(s.cfg.RefreshCron, func() {
		common.SafeGo(s.logger, "scheduler.refresh", func() {
			s.runExclusive(ModeRefresh, s.runRefresh)
		})
	}); err != nil {
		return fmt.Errorf("scheduler: register refresh: %w", err)
	}

	if _, err := s.cron.AddFunc(s.cfg.MaintenanceCron, func() {
		common.SafeGo(s.logger, "scheduler.maintenance", func() {
			s.runExclusive(ModeMaintenance, s.runMaintenance)
		})
	}); err != nil {
		return fmt.Errorf("scheduler: register maintenance: %w", err)
	}

	s.cron.Start()
	s.logger.Info().Msg("scheduler: started")
	return nil
}

func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("scheduler: stopped")
}

// RunDiscoveryOnce runs one discovery pass synchronously, for the `discover`
// CLI subcommand. Returns an error if a pass is already active.
func (s *Service) RunDiscoveryOnce(ctx context.Context) error {
	return s.runOnce(ctx, ModeDiscovery, s.runDiscovery)
}

// RunRefreshOnce runs one refresh pass synchronously, for the `refresh` CLI
// subcommand.
func (s *Service) RunRefreshOnce(ctx context.Context) error {
	return s.runOnce(ctx, ModeRefresh, s.runRefresh)
}

// RunMaintenanceOnce runs one maintenance pass synchronously, for the
// `maintain` CLI subcommand.
func (s *Service) RunMaintenanceOnce(ctx context.Context) error {
	return s.runOnce(ctx, ModeMaintenance, s.runMaintenance)
}

func (s *Service) runOnce(ctx context.Context, mode Mode, fn func(ctx context.Context)) error {
	if !s.globalMu.TryLock() {
		return fmt.Errorf("scheduler: a %s pass is already active", mode)
	}
	defer s.globalMu.Unlock()

	s.state.begin(mode)
	fn(ctx)
	return nil
}

// runExclusive tries to acquire the global pass lock; a trigger that loses
// the race is dropped, not queued, and logged.
func (s *Service) runExclusive(mode Mode, fn func(ctx context.Context)) {
	if !s.globalMu.TryLock() {
		s.logger.Warn().Str("mode", string(mode)).Msg("scheduler: pass already active, dropping trigger")
		return
	}
	defer s.globalMu.Unlock()

	s.state.begin(mode)
	ctx := context.Background()
	fn(ctx)
}

// runDiscovery picks up to DiscoveryBatchSize untested seeds
// (tier asc, company name asc — enforced by SeedStore.Untested), probes each, and on
// a hit collects and reconciles.
func (s *Service) runDiscovery(ctx context.Context) {
	seeds, err := s.store.Seeds().Untested(ctx, s.cfg.DiscoveryBatchSize)
	if err != nil {
		s.state.finish(err)
		s.logger.Error().Err(err).Msg("scheduler: discovery: list untested seeds")
		return
	}

	total := len(seeds)
	var stats models.CollectionStats
	for i, seed := range seeds {
		stats.Tested++
		s.probeAndCollect(ctx, seed, &stats)

		progress := float64(i+1) / float64(max(total, 1))
		s.state.progress(progress, stats)
		if s.onProgress != nil {
			s.onProgress(progress, stats)
		}
	}

	s.state.finish(nil)
}

func (s *Service) probeAndCollect(ctx context.Context, seed *models.Seed, stats *models.CollectionStats) {
	candidates := probe.CandidateTokens(seed.CompanyName, s.cfg.MaxCandidateVariants)
	result, err := s.prober.Probe(ctx, seed.CompanyName, candidates)
	now := time.Now()
	if err != nil {
		s.logger.Warn().Err(err).Str("company_name", seed.CompanyName).Msg("scheduler: probe failed")
		_ = s.store.Seeds().MarkSourceError(ctx, seed.CompanyName, now)
		return
	}

	if !result.Hit {
		_ = s.store.Seeds().MarkTested(ctx, seed.CompanyName, false, now)
		return
	}

	stats.Hits++
	_ = s.store.Seeds().MarkTested(ctx, seed.CompanyName, true, now)

	s.collectAndReconcile(ctx, seed.CompanyName, result.ATSType, result.Token, stats)
}

func (s *Service) collectAndReconcile(ctx context.Context, companyName, atsType, token string, stats *models.CollectionStats) {
	companyID := normalizer.CompanyID(atsType, token)
	result, err := s.collect.Collect(ctx, companyID, atsType, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("company_name", companyName).Str("ats_type", atsType).Msg("scheduler: collect failed")
		return
	}

	collectStats, err := s.recon.Apply(ctx, result, companyName)
	if err != nil {
		s.logger.Warn().Err(err).Str("company_name", companyName).Msg("scheduler: reconcile failed")
		return
	}
	stats.JobsAdded += collectStats.JobsAdded
	stats.JobsClosed += collectStats.JobsClosed
}

// runRefresh collects and reconciles every company whose last_updated is
// older than RefreshIntervalHours.
func (s *Service) runRefresh(ctx context.Context) {
	cutoff := time.Now().Add(-time.Duration(s.cfg.RefreshIntervalHours) * time.Hour)
	companies, err := s.store.Companies().StaleSince(ctx, cutoff, 0)
	if err != nil {
		s.state.finish(err)
		s.logger.Error().Err(err).Msg("scheduler: refresh: list stale companies")
		return
	}

	total := len(companies)
	var stats models.CollectionStats
	for i, c := range companies {
		stats.Tested++
		s.collectAndReconcile(ctx, c.CompanyName, c.ATSType, c.Token, &stats)

		progress := float64(i+1) / float64(max(total, 1))
		s.state.progress(progress, stats)
		if s.onProgress != nil {
			s.onProgress(progress, stats)
		}
	}

	s.state.finish(nil)
}
