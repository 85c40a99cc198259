// -----------------------------------------------------------------------
// Maintenance pass: 6h snapshots, snapshot/job-archive retention pruning,
// month-boundary monthly snapshots, and the market-intelligence analytics
// recompute.
// -----------------------------------------------------------------------

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/hireradar/internal/models"
)

func (s *Service) runMaintenance(ctx context.Context) {
	now := time.Now()

	companies, err := s.store.Companies().All(ctx)
	if err != nil {
		s.state.finish(err)
		s.logger.Error().Err(err).Msg("scheduler: maintenance: list companies")
		return
	}

	for _, c := range companies {
		snap := &models.Snapshot6h{
			ID:           uuid.NewString(),
			SnapshotTime: now,
			CompanyID:    c.ID,
			JobCount:     c.JobCount,
			RemoteCount:  c.Remote,
			HybridCount:  c.Hybrid,
			OnsiteCount:  c.Onsite,
		}
		if err := s.store.Snapshots().InsertSnapshot6h(ctx, snap); err != nil {
			s.logger.Warn().Err(err).Str("company_id", c.ID).Msg("scheduler: maintenance: insert 6h snapshot failed")
		}
	}

	snapCutoff := now.AddDate(0, 0, -s.cfg.SnapshotRetentionDays)
	if pruned, err := s.store.Snapshots().PruneSnapshots6hBefore(ctx, snapCutoff); err != nil {
		s.logger.Warn().Err(err).Msg("scheduler: maintenance: prune 6h snapshots failed")
	} else if pruned > 0 {
		s.logger.Info().Int("pruned", pruned).Msg("scheduler: maintenance: pruned stale 6h snapshots")
	}

	// Monthly snapshot only runs in the early morning window (hour < 6) to
	// avoid recomputing it on every maintenance pass.
	if now.Hour() < 6 {
		for _, c := range companies {
			monthly := &models.MonthlySnapshot{
				ID:          fmt.Sprintf("%s|%04d-%02d", c.ID, now.Year(), int(now.Month())),
				Year:        now.Year(),
				Month:       int(now.Month()),
				CompanyID:   c.ID,
				JobCount:    c.JobCount,
				RemoteCount: c.Remote,
				HybridCount: c.Hybrid,
				OnsiteCount: c.Onsite,
			}
			if err := s.store.Snapshots().UpsertMonthlySnapshot(ctx, monthly); err != nil {
				s.logger.Warn().Err(err).Str("company_id", c.ID).Msg("scheduler: maintenance: upsert monthly snapshot failed")
			}
		}
	}

	jobCutoff := now.AddDate(0, 0, -s.cfg.JobArchiveRetentionDays)
	if purged, err := s.store.Jobs().PurgeClosedBefore(ctx, jobCutoff); err != nil {
		s.logger.Warn().Err(err).Msg("scheduler: maintenance: purge closed jobs failed")
	} else if purged > 0 {
		s.logger.Info().Int("purged", purged).Msg("scheduler: maintenance: purged old closed jobs")
	}

	report, err := generateMarketIntelReport(ctx, s.store)
	if err != nil {
		s.logger.Warn().Err(err).Msg("scheduler: maintenance: market intelligence report failed")
	} else {
		s.logger.Info().
			Int("companies", report.TotalCompaniesTracked).
			Int("open_jobs", report.TotalOpenJobs).
			Int("surges", len(report.Surges)).
			Int("declines", len(report.Declines)).
			Msg("scheduler: maintenance: market intelligence report generated")
	}

	s.state.finish(nil)
}
