// -----------------------------------------------------------------------
// Collector fetches the full open-postings set for a confirmed
// (company, ats_type, token), normalizes each record, and emits a
// CollectionResult.
// -----------------------------------------------------------------------

package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
	"github.com/ternarybob/hireradar/internal/normalizer"
)

// Collector paginates an ATS provider's listing endpoint via the Fetcher,
// applying the Normalizer to every raw record it reads.
type Collector struct {
	registry     interfaces.Registry
	fetcher      interfaces.Fetcher
	maxPages     int
	logger       arbor.ILogger
}

func NewCollector(registry interfaces.Registry, fetcher interfaces.Fetcher, maxPages int, logger arbor.ILogger) *Collector {
	return &Collector{registry: registry, fetcher: fetcher, maxPages: maxPages, logger: logger}
}

// Collect fetches every page of companyID's board on atsType/token and
// normalizes the result. A failure after page k (k >= 1 pages already
// read) is surfaced as a Partial result; the Reconciler must not close
// stale jobs from a partial result.
func (c *Collector) Collect(ctx context.Context, companyID, atsType, token string) (*models.CollectionResult, error) {
	provider, ok := c.registry.ByName(atsType)
	if !ok {
		return nil, fmt.Errorf("collector: unknown ats provider %q", atsType)
	}

	result := &models.CollectionResult{
		CompanyID:   companyID,
		ATSType:     atsType,
		Token:       token,
		CollectedAt: time.Now(),
	}

	var rawJobs []models.RawJob
	for page := 0; page < c.maxPages; page++ {
		if ctx.Err() != nil {
			result.Partial = true
			result.PartialErr = ctx.Err()
			break
		}

		url := provider.ListURL(token, page)
		resp, err := c.fetcher.Fetch(ctx, url, "GET", interfaces.FetchOptions{AcceptJSON: true, Headers: map[string]string{"X-ATS-Provider": atsType}})
		if err != nil {
			if page == 0 {
				return nil, fmt.Errorf("collector: first page fetch for %s/%s: %w", atsType, token, err)
			}
			result.Partial = true
			result.PartialErr = err
			result.PagesOK = page
			c.logger.Warn().Err(err).Str("ats", atsType).Str("token", token).Int("page", page).Msg("collector: partial collection, stopping pagination")
			break
		}

		jobs, hasNext, err := provider.ParseListing(resp.Body)
		if err != nil {
			if page == 0 {
				return nil, fmt.Errorf("collector: first page parse for %s/%s: %w", atsType, token, err)
			}
			result.Partial = true
			result.PartialErr = err
			result.PagesOK = page
			break
		}

		rawJobs = append(rawJobs, jobs...)
		result.PagesOK = page + 1

		if result.CareersURL == "" {
			result.CareersURL = url
		}
		if !hasNext {
			break
		}
	}

	normalized := make([]models.NormalizedJob, 0, len(rawJobs))
	for _, raw := range rawJobs {
		nj := normalizer.Normalize(companyID, raw)
		normalized = append(normalized, nj)
	}
	result.Jobs = normalized
	result.Aggregates = aggregate(normalized)

	return result, nil
}

func aggregate(jobs []models.NormalizedJob) models.Aggregates {
	var a models.Aggregates
	locations := map[string]bool{}
	departments := map[string]bool{}
	skills := map[string]bool{}
	for _, j := range jobs {
		a.JobCount++
		switch j.WorkType {
		case models.WorkTypeRemote:
			a.Remote++
		case models.WorkTypeHybrid:
			a.Hybrid++
		case models.WorkTypeOnsite:
			a.Onsite++
		}
		if j.City != "" || j.Region != "" || j.Country != "" {
			locations[j.City+"|"+j.Region+"|"+j.Country] = true
		}
		if j.Department != "" {
			departments[j.Department] = true
		}
		for _, s := range j.Skills {
			skills[s] = true
		}
	}
	for loc := range locations {
		a.Locations = append(a.Locations, loc)
		a.NormalizedLocations = append(a.NormalizedLocations, loc)
	}
	for dep := range departments {
		a.Departments = append(a.Departments, dep)
	}
	for s := range skills {
		a.ExtractedSkills = append(a.ExtractedSkills, s)
	}
	return a
}
