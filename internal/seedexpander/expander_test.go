package seedexpander

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

type memSeedStore struct {
	byName map[string]*models.Seed
}

func newMemSeedStore() *memSeedStore { return &memSeedStore{byName: map[string]*models.Seed{}} }

func (s *memSeedStore) Insert(ctx context.Context, seed *models.Seed) error {
	if _, ok := s.byName[seed.CompanyName]; ok {
		return fmt.Errorf("duplicate seed: %s", seed.CompanyName)
	}
	s.byName[seed.CompanyName] = seed
	return nil
}
func (s *memSeedStore) Get(ctx context.Context, companyName string) (*models.Seed, error) {
	seed, ok := s.byName[companyName]
	if !ok {
		return nil, fmt.Errorf("not found: %s", companyName)
	}
	return seed, nil
}
func (s *memSeedStore) Exists(ctx context.Context, companyName string) (bool, error) {
	_, ok := s.byName[companyName]
	return ok, nil
}
func (s *memSeedStore) MarkTested(ctx context.Context, companyName string, hit bool, when time.Time) error {
	return nil
}
func (s *memSeedStore) MarkSourceError(ctx context.Context, companyName string, when time.Time) error {
	return nil
}
func (s *memSeedStore) Untested(ctx context.Context, limit int) ([]*models.Seed, error) { return nil, nil }
func (s *memSeedStore) Count(ctx context.Context) (int, error)                          { return len(s.byName), nil }

var _ interfaces.SeedStore = (*memSeedStore)(nil)

type noopFetcher struct{}

func (noopFetcher) Fetch(ctx context.Context, rawURL, method string, opts interfaces.FetchOptions) (*interfaces.FetchResponse, error) {
	return &interfaces.FetchResponse{Status: 200, Body: nil}, nil
}

func TestExpanderInsertsOnlyNewSanitizedNames(t *testing.T) {
	seeds := newMemSeedStore()
	seeds.byName["Beta"] = models.NewSeed("Beta", "beta", "manual", models.SeedTierCurated)

	sources := []Source{
		{Name: "manual", Tier: models.SeedTierCurated, Kind: KindStaticList,
			Names: []string{"Acme", "Beta", "the", "<script>", "A"}},
	}

	e := NewExpander(noopFetcher{}, seeds, sources, 2, 50, arbor.NewLogger())
	stats := e.Run(context.Background())

	if stats.SourcesRun != 1 {
		t.Errorf("expected SourcesRun 1, got %d", stats.SourcesRun)
	}
	if stats.SeedsInserted != 2 {
		t.Errorf("expected SeedsInserted 2 (Acme, and \"script\" left after stripping <script>), got %d", stats.SeedsInserted)
	}
	if _, ok := seeds.byName["Acme"]; !ok {
		t.Error("expected Acme to be inserted")
	}
}

func TestExpanderSkipsFailingSourceButContinues(t *testing.T) {
	seeds := newMemSeedStore()
	sources := []Source{
		{Name: "broken", Tier: models.SeedTierCurated, Kind: KindHTMLDirectory, URL: "https://broken.example.com"},
		{Name: "manual", Tier: models.SeedTierCurated, Kind: KindStaticList, Names: []string{"Acme"}},
	}

	e := NewExpander(failingFetcher{}, seeds, sources, 2, 50, arbor.NewLogger())
	stats := e.Run(context.Background())

	if stats.SourcesFailed != 1 {
		t.Errorf("expected SourcesFailed 1, got %d", stats.SourcesFailed)
	}
	if stats.SeedsInserted != 1 {
		t.Errorf("expected the second, static-list source to still insert, got %d", stats.SeedsInserted)
	}
}

type failingFetcher struct{}

func (failingFetcher) Fetch(ctx context.Context, rawURL, method string, opts interfaces.FetchOptions) (*interfaces.FetchResponse, error) {
	return nil, fmt.Errorf("network unreachable")
}

func TestExpanderSanitizeFiltersByLengthAndStopwords(t *testing.T) {
	e := NewExpander(noopFetcher{}, newMemSeedStore(), nil, 3, 10, arbor.NewLogger())

	if _, ok := e.sanitize("the"); ok {
		t.Error("expected stop-word-only name to be rejected")
	}
	if _, ok := e.sanitize("ab"); ok {
		t.Error("expected too-short name to be rejected")
	}
	if _, ok := e.sanitize("a-very-long-company-name-indeed"); ok {
		t.Error("expected too-long name to be rejected")
	}
	if _, ok := e.sanitize("123"); ok {
		t.Error("expected all-digit name with no letters to be rejected")
	}
	name, ok := e.sanitize(`<b>Acme</b>`)
	if !ok {
		t.Fatal("expected a valid name after stripping angle brackets")
	}
	if name != "bAcme/b" {
		t.Errorf("expected angle brackets stripped leaving %q, got %q", "bAcme/b", name)
	}
}
