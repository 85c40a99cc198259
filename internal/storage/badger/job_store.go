package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// JobStorage implements interfaces.JobStore for Badger.
type JobStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

func NewJobStorage(db *BadgerDB, logger arbor.ILogger) interfaces.JobStore {
	return &JobStorage{db: db, logger: logger}
}

func (s *JobStorage) Upsert(ctx context.Context, j *models.Job) error {
	if j.JobHash == "" {
		return fmt.Errorf("job hash is required")
	}
	if err := s.db.Store().Upsert(j.JobHash, j); err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}
	return nil
}

func (s *JobStorage) Get(ctx context.Context, jobHash string) (*models.Job, error) {
	var j models.Job
	if err := s.db.Store().Get(jobHash, &j); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("job not found: %s", jobHash)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

func (s *JobStorage) OpenForCompany(ctx context.Context, companyID string) ([]*models.Job, error) {
	var jobs []models.Job
	query := badgerhold.Where("CompanyID").Eq(companyID).And("Status").Eq(models.JobStatusOpen)
	if err := s.db.Store().Find(&jobs, query); err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}

	out := make([]*models.Job, len(jobs))
	for i := range jobs {
		out[i] = &jobs[i]
	}
	return out, nil
}

func (s *JobStorage) PurgeClosedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := badgerhold.Where("Status").Eq(models.JobStatusClosed).And("LastSeen").Lt(cutoff)

	count, err := s.db.Store().Count(&models.Job{}, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count closed jobs to purge: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	if err := s.db.Store().DeleteMatching(&models.Job{}, query); err != nil {
		return 0, fmt.Errorf("failed to purge closed jobs: %w", err)
	}
	return int(count), nil
}

// Closed returns every closed job, read by the market-intelligence pass for
// time-to-fill percentiles.
func (s *JobStorage) Closed(ctx context.Context) ([]*models.Job, error) {
	var jobs []models.Job
	if err := s.db.Store().Find(&jobs, badgerhold.Where("Status").Eq(models.JobStatusClosed)); err != nil {
		return nil, fmt.Errorf("failed to list closed jobs: %w", err)
	}

	out := make([]*models.Job, len(jobs))
	for i := range jobs {
		out[i] = &jobs[i]
	}
	return out, nil
}
