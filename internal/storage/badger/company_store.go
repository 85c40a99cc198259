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

// CompanyStorage implements interfaces.CompanyStore for Badger.
type CompanyStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

func NewCompanyStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CompanyStore {
	return &CompanyStorage{db: db, logger: logger}
}

func (s *CompanyStorage) Upsert(ctx context.Context, c *models.Company) error {
	if c.ID == "" {
		return fmt.Errorf("company id is required")
	}
	if err := s.db.Store().Upsert(c.ID, c); err != nil {
		return fmt.Errorf("failed to upsert company: %w", err)
	}
	return nil
}

func (s *CompanyStorage) Get(ctx context.Context, id string) (*models.Company, error) {
	var c models.Company
	if err := s.db.Store().Get(id, &c); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("company not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// StaleSince returns companies whose LastUpdated is before cutoff, oldest
// first, so refresh passes drain the longest-stale companies first.
func (s *CompanyStorage) StaleSince(ctx context.Context, cutoff time.Time, limit int) ([]*models.Company, error) {
	query := badgerhold.Where("LastUpdated").Lt(cutoff).SortBy("LastUpdated")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var companies []models.Company
	if err := s.db.Store().Find(&companies, query); err != nil {
		return nil, fmt.Errorf("failed to list stale companies: %w", err)
	}

	out := make([]*models.Company, len(companies))
	for i := range companies {
		out[i] = &companies[i]
	}
	return out, nil
}

func (s *CompanyStorage) All(ctx context.Context) ([]*models.Company, error) {
	var companies []models.Company
	if err := s.db.Store().Find(&companies, nil); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	out := make([]*models.Company, len(companies))
	for i := range companies {
		out[i] = &companies[i]
	}
	return out, nil
}
