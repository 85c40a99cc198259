package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Greenhouse parses boards-api.greenhouse.io job boards.
type Greenhouse struct{}

func (Greenhouse) Name() string  { return "greenhouse" }
func (Greenhouse) Priority() int { return 1 }

func (Greenhouse) ProbeURL(token string) string {
	return fmt.Sprintf("https://boards-api.greenhouse.io/v1/boards/%s/jobs", token)
}

func (Greenhouse) ListURL(token string, page int) string {
	// Greenhouse's public boards API returns the full set in one page.
	return fmt.Sprintf("https://boards-api.greenhouse.io/v1/boards/%s/jobs?content=true", token)
}

func (g Greenhouse) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, nil
	}
	jobs := gjson.GetBytes(body, "jobs")
	if !jobs.Exists() {
		return nil, false, nil
	}
	raw, _, err := g.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Greenhouse) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("greenhouse: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "jobs").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("title").String(),
			Location:   j.Get("location.name").String(),
			Department: j.Get("departments.0.name").String(),
			URL:        j.Get("absolute_url").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Greenhouse{}
