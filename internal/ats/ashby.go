package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Ashby parses api.ashbyhq.com's public job-board posting API.
type Ashby struct{}

func (Ashby) Name() string  { return "ashby" }
func (Ashby) Priority() int { return 3 }

func (Ashby) ProbeURL(token string) string {
	return fmt.Sprintf("https://api.ashbyhq.com/posting-api/job-board/%s", token)
}

func (Ashby) ListURL(token string, page int) string {
	return fmt.Sprintf("https://api.ashbyhq.com/posting-api/job-board/%s?includeCompensation=false", token)
}

func (a Ashby) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, nil
	}
	if !gjson.GetBytes(body, "jobs").Exists() {
		return nil, false, nil
	}
	raw, _, err := a.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Ashby) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("ashby: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "jobs").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("title").String(),
			Location:   j.Get("location").String(),
			Department: j.Get("department").String(),
			URL:        j.Get("jobUrl").String(),
			Description: j.Get("descriptionPlain").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Ashby{}
