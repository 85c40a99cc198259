// -----------------------------------------------------------------------
// App wires every component named in the domain together: storage,
// fetcher, ATS registry, probe engine, collector, reconciler, seed
// expander, and scheduler. Grounded on internal/app/app.go's New/Close
// lifecycle.
// -----------------------------------------------------------------------

package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/ats"
	"github.com/ternarybob/hireradar/internal/collector"
	"github.com/ternarybob/hireradar/internal/common"
	"github.com/ternarybob/hireradar/internal/fetcher"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
	"github.com/ternarybob/hireradar/internal/probe"
	"github.com/ternarybob/hireradar/internal/reconciler"
	"github.com/ternarybob/hireradar/internal/scheduler"
	"github.com/ternarybob/hireradar/internal/seedexpander"
	"github.com/ternarybob/hireradar/internal/storage"
)

// App holds every wired component and owns their lifecycle.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager
	Renderer       interfaces.Renderer
	Fetcher        interfaces.Fetcher
	Registry       interfaces.Registry
	Prober         interfaces.Prober
	Collector      *collector.Collector
	Reconciler     *reconciler.Reconciler
	SeedExpander   *seedexpander.Expander
	Scheduler      *scheduler.Service
}

// New builds the full dependency graph in the order each component needs
// the last: storage first, then the polite-fetch layer, then the ATS
// registry and everything built on top of it.
func New(cfg *common.Config, logger arbor.ILogger, onProgress models.ProgressFunc) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	store, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = store

	if cfg.Fetcher.EnableJavaScript {
		a.Renderer = fetcher.NewChromeDPPool(fetcher.ChromeDPPoolConfig{
			WaitTime:   cfg.Fetcher.JavaScriptWaitTime,
			NavTimeout: cfg.Fetcher.RequestTimeout,
			Headless:   true,
		}, logger)
	} else {
		a.Renderer = fetcher.NoopRenderer{}
	}
	a.Fetcher = fetcher.NewHTTPFetcher(cfg.Fetcher, a.Renderer, logger)

	a.Registry = ats.NewRegistry()

	a.Prober = probe.NewEngine(a.Registry, a.Fetcher, cfg.Probe.MaxConcurrentProbes, cfg.Probe.CacheTTL, logger)

	a.Collector = collector.NewCollector(a.Registry, a.Fetcher, cfg.Collector.MaxPagesPerBoard, logger)

	a.Reconciler = reconciler.NewReconciler(store.Companies(), store.Jobs(), logger)

	a.SeedExpander = seedexpander.NewExpander(
		a.Fetcher,
		store.Seeds(),
		seedexpander.DefaultSources,
		cfg.Seeds.MinLength,
		cfg.Seeds.MaxLength,
		logger,
	)

	schedCfg := scheduler.Config{
		DiscoveryCron:           cfg.Scheduler.DiscoveryCron,
		DiscoveryBatchSize:      cfg.Scheduler.DiscoveryBatchSize,
		RefreshCron:             cfg.Scheduler.RefreshCron,
		RefreshIntervalHours:    cfg.Scheduler.RefreshIntervalHours,
		MaintenanceCron:         cfg.Scheduler.MaintenanceCron,
		SnapshotRetentionDays:   cfg.Scheduler.SnapshotRetentionDays,
		JobArchiveRetentionDays: cfg.Scheduler.JobArchiveRetentionDays,
		MaxCandidateVariants:    cfg.Probe.MaxCandidateVariants,
	}
	a.Scheduler = scheduler.NewService(schedCfg, store, a.Prober, a.Collector, a.Reconciler, a.SeedExpander, onProgress, logger)

	logger.Info().Msg("application initialized")
	return a, nil
}

// Close releases every resource App owns, in reverse dependency order.
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if pool, ok := a.Renderer.(*fetcher.ChromeDPPool); ok {
		pool.Close()
	}
	common.Stop()
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	return nil
}
