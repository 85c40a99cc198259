package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// SeedStorage implements interfaces.SeedStore for Badger.
type SeedStorage struct {
	db       *BadgerDB
	logger   arbor.ILogger
	validate *validator.Validate
}

func NewSeedStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SeedStore {
	return &SeedStorage{db: db, logger: logger, validate: validator.New()}
}

func (s *SeedStorage) Insert(ctx context.Context, seed *models.Seed) error {
	if err := s.validate.Struct(seed); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	if err := s.db.Store().Insert(seed.CompanyName, seed); err != nil {
		return fmt.Errorf("failed to insert seed: %w", err)
	}
	return nil
}

func (s *SeedStorage) Get(ctx context.Context, companyName string) (*models.Seed, error) {
	var seed models.Seed
	if err := s.db.Store().Get(companyName, &seed); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("seed not found: %s", companyName)
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	return &seed, nil
}

func (s *SeedStorage) Exists(ctx context.Context, companyName string) (bool, error) {
	var seed models.Seed
	err := s.db.Store().Get(companyName, &seed)
	if err == nil {
		return true, nil
	}
	if err == badgerhold.ErrNotFound {
		return false, nil
	}
	return false, fmt.Errorf("failed to check seed existence: %w", err)
}

func (s *SeedStorage) MarkTested(ctx context.Context, companyName string, hit bool, when time.Time) error {
	var seed models.Seed
	if err := s.db.Store().Get(companyName, &seed); err != nil {
		return fmt.Errorf("failed to load seed for MarkTested: %w", err)
	}
	seed.LastTested = when
	seed.IsHit = hit
	seed.TotalTested++
	if hit {
		seed.TotalHits++
	}
	if err := s.db.Store().Update(companyName, &seed); err != nil {
		return fmt.Errorf("failed to mark seed tested: %w", err)
	}
	return nil
}

// MarkSourceError marks the seed tested with is_hit=false, the same as a
// confirmed miss, but also bumps SourceErrorCount so a pass where every
// probe errored is distinguishable from one that genuinely checked and
// found nothing.
func (s *SeedStorage) MarkSourceError(ctx context.Context, companyName string, when time.Time) error {
	var seed models.Seed
	if err := s.db.Store().Get(companyName, &seed); err != nil {
		return fmt.Errorf("failed to load seed for MarkSourceError: %w", err)
	}
	seed.LastTested = when
	seed.IsHit = false
	seed.TotalTested++
	seed.SourceErrorCount++
	if err := s.db.Store().Update(companyName, &seed); err != nil {
		return fmt.Errorf("failed to mark seed source error: %w", err)
	}
	return nil
}

// Untested returns up to limit enabled seeds never probed, tier ascending
// then company name ascending for a deterministic discovery order.
func (s *SeedStorage) Untested(ctx context.Context, limit int) ([]*models.Seed, error) {
	query := badgerhold.Where("Enabled").Eq(true).And("LastTested").Eq(time.Time{}).
		SortBy("Tier", "CompanyName")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var seeds []models.Seed
	if err := s.db.Store().Find(&seeds, query); err != nil {
		return nil, fmt.Errorf("failed to list untested seeds: %w", err)
	}

	out := make([]*models.Seed, len(seeds))
	for i := range seeds {
		out[i] = &seeds[i]
	}
	return out, nil
}

func (s *SeedStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.Seed{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count seeds: %w", err)
	}
	return int(count), nil
}
