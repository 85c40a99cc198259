package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Recruitee parses {token}.recruitee.com's public offers API.
type Recruitee struct{}

func (Recruitee) Name() string  { return "recruitee" }
func (Recruitee) Priority() int { return 11 }

func (Recruitee) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.recruitee.com/api/offers/", token)
}

func (Recruitee) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.recruitee.com/api/offers/", token)
}

func (r Recruitee) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "offers").Exists() {
		return nil, false, nil
	}
	raw, _, err := r.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Recruitee) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("recruitee: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "offers").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("title").String(),
			Location:   joinLocation(j.Get("city").String(), j.Get("country").String()),
			Department: j.Get("department").String(),
			URL:        j.Get("careers_url").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Recruitee{}
