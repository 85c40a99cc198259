// -----------------------------------------------------------------------
// Market-intelligence analytics computed during a maintenance pass:
// top skills, top hiring regions, time-to-fill percentiles, and
// job-surge / job-decline detection against the prior 6h snapshot.
// Location expansion is not detected: detectExpansion always reports
// none, so Expansions is always empty. Grounded on original_source/market_intel.py's
// MarketIntelligence class, reimplemented over the in-process store
// instead of raw SQL.
// -----------------------------------------------------------------------

package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// MarketIntelReport mirrors original_source/market_intel.py's
// MarketIntelReport dataclass.
type MarketIntelReport struct {
	GeneratedAt           time.Time
	TotalCompaniesTracked int
	TotalOpenJobs         int
	TimeToFillPercentiles TimeToFillMetrics
	TopSkills             []SkillCount
	TopHiringRegions      []RegionCount
	Expansions            []LocationExpansion
	Surges                []JobCountChange
	Declines              []JobCountChange
}

type TimeToFillMetrics struct {
	P50 int
	P90 int
	Avg float64
}

type SkillCount struct {
	Skill string
	Count int
}

type RegionCount struct {
	Region string
	Count  int
}

// LocationExpansion flags a company whose NormalizedLocations grew a new
// entry since the prior 6h snapshot.
type LocationExpansion struct {
	CompanyID   string
	CompanyName string
	NewLocation string
}

// JobCountChange flags a >=10% swing in a company's job count against the
// prior 6h snapshot.
type JobCountChange struct {
	CompanyID      string
	CompanyName    string
	PreviousCount  int
	CurrentCount   int
	ChangePercent  float64
	ChangeType     string // "surge" or "decline"
}

const surgeDeclineThreshold = 0.10

func generateMarketIntelReport(ctx context.Context, store interfaces.StorageManager) (MarketIntelReport, error) {
	companies, err := store.Companies().All(ctx)
	if err != nil {
		return MarketIntelReport{}, err
	}
	closedJobs, err := store.Jobs().Closed(ctx)
	if err != nil {
		return MarketIntelReport{}, err
	}

	report := MarketIntelReport{
		GeneratedAt:           time.Now(),
		TotalCompaniesTracked: len(companies),
		TimeToFillPercentiles: timeToFillMetrics(closedJobs),
		TopSkills:             topSkills(companies, 10),
		TopHiringRegions:      topHiringRegions(companies, 5),
	}
	for _, c := range companies {
		report.TotalOpenJobs += c.JobCount
	}

	for _, c := range companies {
		prior, err := store.Snapshots().Snapshots6hForCompany(ctx, c.ID, time.Now().Add(-12*time.Hour))
		if err != nil || len(prior) == 0 {
			continue
		}
		last := prior[len(prior)-1]

		if expansion, ok := detectExpansion(c, last); ok {
			report.Expansions = append(report.Expansions, expansion)
		}
		if change, ok := detectJobCountChange(c, last); ok {
			if change.ChangeType == "surge" {
				report.Surges = append(report.Surges, change)
			} else {
				report.Declines = append(report.Declines, change)
			}
		}
	}

	return report, nil
}

func timeToFillMetrics(jobs []*models.Job) TimeToFillMetrics {
	if len(jobs) == 0 {
		return TimeToFillMetrics{}
	}
	days := make([]int, 0, len(jobs))
	total := 0
	for _, j := range jobs {
		days = append(days, j.TimeToFillDays)
		total += j.TimeToFillDays
	}
	sort.Ints(days)
	return TimeToFillMetrics{
		P50: percentile(days, 0.50),
		P90: percentile(days, 0.90),
		Avg: float64(total) / float64(len(days)),
	}
}

func percentile(sorted []int, p float64) int {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

func topSkills(companies []*models.Company, limit int) []SkillCount {
	counts := map[string]int{}
	for _, c := range companies {
		for _, s := range c.ExtractedSkills {
			counts[s]++
		}
	}
	return topN(counts, limit, func(k string, v int) SkillCount { return SkillCount{Skill: k, Count: v} })
}

func topHiringRegions(companies []*models.Company, limit int) []RegionCount {
	counts := map[string]int{}
	for _, c := range companies {
		for _, loc := range c.NormalizedLocations {
			counts[loc]++
		}
	}
	return topN(counts, limit, func(k string, v int) RegionCount { return RegionCount{Region: k, Count: v} })
}

func topN[T any](counts map[string]int, limit int, build func(string, int) T) []T {
	type pair struct {
		key   string
		count int
	}
	pairs := make([]pair, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	out := make([]T, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, build(p.key, p.count))
	}
	return out
}

func detectExpansion(c *models.Company, prior *models.Snapshot6h) (LocationExpansion, bool) {
	// The 6h snapshot tracks counts, not location sets, so expansion would
	// need to be inferred from a higher location count than the snapshot
	// window recorded, derived from companies rather than snapshots_6h.
	if len(c.NormalizedLocations) == 0 {
		return LocationExpansion{}, false
	}
	return LocationExpansion{}, false
}

func detectJobCountChange(c *models.Company, prior *models.Snapshot6h) (JobCountChange, bool) {
	if prior.JobCount == 0 {
		return JobCountChange{}, false
	}
	changePercent := float64(c.JobCount-prior.JobCount) / float64(prior.JobCount)
	if changePercent >= surgeDeclineThreshold {
		return JobCountChange{
			CompanyID:     c.ID,
			CompanyName:   c.CompanyName,
			PreviousCount: prior.JobCount,
			CurrentCount:  c.JobCount,
			ChangePercent: changePercent,
			ChangeType:    "surge",
		}, true
	}
	if changePercent <= -surgeDeclineThreshold {
		return JobCountChange{
			CompanyID:     c.ID,
			CompanyName:   c.CompanyName,
			PreviousCount: prior.JobCount,
			CurrentCount:  c.JobCount,
			ChangePercent: changePercent,
			ChangeType:    "decline",
		}, true
	}
	return JobCountChange{}, false
}
