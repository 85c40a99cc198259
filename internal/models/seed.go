package models

import "time"

// SeedTier ranks how trusted a seed source is. Tier 1 sources (curated lists,
// YC, Crunchbase unicorns) are probed before tier 3 (broad scrapes).
type SeedTier int

const (
	SeedTierCurated SeedTier = 1
	SeedTierBroad   SeedTier = 2
	SeedTierLongTail SeedTier = 3
)

// Seed is a candidate company name awaiting ATS probing. CompanyName is the
// natural key; multiple seeds may share a TokenSlug but never a CompanyName.
type Seed struct {
	CompanyName string    `badgerhold:"key" validate:"required,min=1,max=200"`
	TokenSlug   string    `badgerholdIndex:"TokenSlug" validate:"required"`
	Source      string    `validate:"required"` // e.g. "yc", "forbes-cloud100", "manual"
	Tier        SeedTier
	Enabled     bool
	LastTested  time.Time `badgerholdIndex:"LastTested"`
	IsHit       bool
	TotalTested int
	TotalHits   int
	// SourceErrorCount counts passes where every probe for this seed
	// errored (network/parse failure) instead of returning a definitive
	// miss. The pass still counts toward TotalTested with IsHit=false;
	// this is operational telemetry only, not a behavior gate.
	SourceErrorCount int
}

// HitRate returns TotalHits/TotalTested, or 0 if never tested.
func (s *Seed) HitRate() float64 {
	if s.TotalTested == 0 {
		return 0
	}
	return float64(s.TotalHits) / float64(s.TotalTested)
}

// NewSeed constructs an enabled, untested Seed.
func NewSeed(companyName, tokenSlug, source string, tier SeedTier) *Seed {
	return &Seed{
		CompanyName: companyName,
		TokenSlug:   tokenSlug,
		Source:      source,
		Tier:        tier,
		Enabled:     true,
	}
}
