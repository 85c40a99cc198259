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

// SnapshotStorage implements interfaces.SnapshotStore for Badger.
type SnapshotStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

func NewSnapshotStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SnapshotStore {
	return &SnapshotStorage{db: db, logger: logger}
}

func (s *SnapshotStorage) InsertSnapshot6h(ctx context.Context, snap *models.Snapshot6h) error {
	if snap.ID == "" {
		return fmt.Errorf("snapshot id is required")
	}
	if err := s.db.Store().Insert(snap.ID, snap); err != nil {
		return fmt.Errorf("failed to insert 6h snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStorage) PruneSnapshots6hBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := badgerhold.Where("SnapshotTime").Lt(cutoff)

	count, err := s.db.Store().Count(&models.Snapshot6h{}, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count stale 6h snapshots: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	if err := s.db.Store().DeleteMatching(&models.Snapshot6h{}, query); err != nil {
		return 0, fmt.Errorf("failed to prune 6h snapshots: %w", err)
	}
	return int(count), nil
}

func (s *SnapshotStorage) UpsertMonthlySnapshot(ctx context.Context, snap *models.MonthlySnapshot) error {
	if snap.ID == "" {
		return fmt.Errorf("monthly snapshot id is required")
	}
	if err := s.db.Store().Upsert(snap.ID, snap); err != nil {
		return fmt.Errorf("failed to upsert monthly snapshot: %w", err)
	}
	return nil
}

// Snapshots6hForCompany returns a company's 6h snapshots since the given
// time, oldest first, so callers can take the last element as "most recent".
func (s *SnapshotStorage) Snapshots6hForCompany(ctx context.Context, companyID string, since time.Time) ([]*models.Snapshot6h, error) {
	query := badgerhold.Where("CompanyID").Eq(companyID).And("SnapshotTime").Ge(since).SortBy("SnapshotTime")

	var snaps []models.Snapshot6h
	if err := s.db.Store().Find(&snaps, query); err != nil {
		return nil, fmt.Errorf("failed to list 6h snapshots: %w", err)
	}

	out := make([]*models.Snapshot6h, len(snaps))
	for i := range snaps {
		out[i] = &snaps[i]
	}
	return out, nil
}
