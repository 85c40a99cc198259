package interfaces

import (
	"context"
	"time"

	"github.com/ternarybob/hireradar/internal/models"
)

// SeedStore is the exclusive owner of Seed probe-state writes (the Probe
// engine) and the Seed expander's insert/dedup path.
type SeedStore interface {
	Insert(ctx context.Context, seed *models.Seed) error
	Get(ctx context.Context, companyName string) (*models.Seed, error)
	Exists(ctx context.Context, companyName string) (bool, error)
	MarkTested(ctx context.Context, companyName string, hit bool, when time.Time) error
	// MarkSourceError records a pass where every probe for companyName
	// errored instead of returning a definitive hit/miss: the seed is
	// still marked tested (is_hit=false) exactly as a confirmed miss
	// would be, but SourceErrorCount is also incremented as operational
	// telemetry distinguishing "errored" from "checked and absent".
	MarkSourceError(ctx context.Context, companyName string, when time.Time) error
	Untested(ctx context.Context, limit int) ([]*models.Seed, error)
	Count(ctx context.Context) (int, error)
}

// CompanyStore is owned exclusively by the Reconciler for writes.
type CompanyStore interface {
	Upsert(ctx context.Context, c *models.Company) error
	Get(ctx context.Context, id string) (*models.Company, error)
	StaleSince(ctx context.Context, cutoff time.Time, limit int) ([]*models.Company, error)
	All(ctx context.Context) ([]*models.Company, error)
}

// JobStore is owned exclusively by the Reconciler for writes. The
// market-intelligence maintenance pass reads it too (Closed, All).
type JobStore interface {
	Upsert(ctx context.Context, j *models.Job) error
	Get(ctx context.Context, jobHash string) (*models.Job, error)
	OpenForCompany(ctx context.Context, companyID string) ([]*models.Job, error)
	PurgeClosedBefore(ctx context.Context, cutoff time.Time) (int, error)
	Closed(ctx context.Context) ([]*models.Job, error)
}

// SnapshotStore is written only by Scheduler maintenance passes.
type SnapshotStore interface {
	InsertSnapshot6h(ctx context.Context, s *models.Snapshot6h) error
	PruneSnapshots6hBefore(ctx context.Context, cutoff time.Time) (int, error)
	UpsertMonthlySnapshot(ctx context.Context, s *models.MonthlySnapshot) error
	Snapshots6hForCompany(ctx context.Context, companyID string, since time.Time) ([]*models.Snapshot6h, error)
}

// StorageManager wires the entity-specific stores to one underlying
// database handle and owns its lifecycle.
type StorageManager interface {
	Seeds() SeedStore
	Companies() CompanyStore
	Jobs() JobStore
	Snapshots() SnapshotStore
	Close() error
}
