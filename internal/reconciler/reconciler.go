// -----------------------------------------------------------------------
// Reconciler applies one CollectionResult atomically per company: upsert
// the company's aggregates, upsert every observed job (open, monotonic
// last_seen), and — for complete results only — close jobs no longer
// observed.
// -----------------------------------------------------------------------

package reconciler

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Reconciler is the exclusive writer of Company and Job rows.
type Reconciler struct {
	companies interfaces.CompanyStore
	jobs      interfaces.JobStore
	locks     *KeyMutex
	logger    arbor.ILogger
}

func NewReconciler(companies interfaces.CompanyStore, jobs interfaces.JobStore, logger arbor.ILogger) *Reconciler {
	return &Reconciler{
		companies: companies,
		jobs:      jobs,
		locks:     NewKeyMutex(),
		logger:    logger,
	}
}

// Apply reconciles result against the archive, serialized per company id.
// companyName seeds a newly-discovered Company's name; it is ignored for a
// company that already exists.
func (r *Reconciler) Apply(ctx context.Context, result *models.CollectionResult, companyName string) (models.CollectionStats, error) {
	unlock := r.locks.Lock(result.CompanyID)
	defer unlock()

	var stats models.CollectionStats
	t := result.CollectedAt

	company, err := r.companies.Get(ctx, result.CompanyID)
	if err != nil {
		company = &models.Company{
			ID:              result.CompanyID,
			CompanyName:     companyName,
			FirstDiscovered: t,
		}
	}
	company.ATSType = result.ATSType
	company.Token = result.Token
	if result.CareersURL != "" {
		company.CareersURL = result.CareersURL
	}
	company.ApplyAggregates(result.Aggregates)
	if t.After(company.LastUpdated) {
		company.LastUpdated = t
	}
	if err := r.companies.Upsert(ctx, company); err != nil {
		return stats, fmt.Errorf("reconciler: upsert company %s: %w", result.CompanyID, err)
	}

	observed := make(map[string]bool, len(result.Jobs))
	for _, nj := range result.Jobs {
		observed[nj.JobHash] = true

		existing, err := r.jobs.Get(ctx, nj.JobHash)
		if err != nil {
			job := &models.Job{
				JobHash:    nj.JobHash,
				CompanyID:  nj.CompanyID,
				Title:      nj.Title,
				City:       nj.City,
				Region:     nj.Region,
				Country:    nj.Country,
				WorkType:   nj.WorkType,
				Skills:     nj.Skills,
				FirstSeen:  t,
				LastSeen:   t,
				Status:     models.JobStatusOpen,
			}
			if err := r.jobs.Upsert(ctx, job); err != nil {
				return stats, fmt.Errorf("reconciler: insert job %s: %w", nj.JobHash, err)
			}
			stats.JobsAdded++
			continue
		}

		existing.TouchSeen(t)
		existing.Title = nj.Title
		existing.City = nj.City
		existing.Region = nj.Region
		existing.Country = nj.Country
		existing.WorkType = nj.WorkType
		existing.Skills = nj.Skills
		if err := r.jobs.Upsert(ctx, existing); err != nil {
			return stats, fmt.Errorf("reconciler: update job %s: %w", nj.JobHash, err)
		}
	}

	if !result.Partial {
		open, err := r.jobs.OpenForCompany(ctx, result.CompanyID)
		if err != nil {
			return stats, fmt.Errorf("reconciler: list open jobs for %s: %w", result.CompanyID, err)
		}
		for _, job := range open {
			if observed[job.JobHash] {
				continue
			}
			if job.LastSeen.Before(t) {
				job.Close(t)
				if err := r.jobs.Upsert(ctx, job); err != nil {
					return stats, fmt.Errorf("reconciler: close job %s: %w", job.JobHash, err)
				}
				stats.JobsClosed++
			}
		}
	} else {
		r.logger.Debug().Str("company_id", result.CompanyID).Msg("reconciler: partial collection, skipping closure pass")
	}

	stats.Hits = 1
	return stats, nil
}
