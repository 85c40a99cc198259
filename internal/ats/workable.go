package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Workable parses apply.workable.com's public widget API.
type Workable struct{}

func (Workable) Name() string  { return "workable" }
func (Workable) Priority() int { return 9 }

func (Workable) ProbeURL(token string) string {
	return fmt.Sprintf("https://apply.workable.com/api/v1/widget/accounts/%s", token)
}

func (Workable) ListURL(token string, page int) string {
	return fmt.Sprintf("https://apply.workable.com/api/v1/widget/accounts/%s", token)
}

func (w Workable) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "jobs").Exists() {
		return nil, false, nil
	}
	raw, _, err := w.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Workable) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("workable: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "jobs").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("title").String(),
			Location:   joinLocation(j.Get("city").String(), j.Get("country").String()),
			Department: j.Get("department").String(),
			URL:        j.Get("url").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Workable{}
