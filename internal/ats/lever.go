package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Lever parses api.lever.co postings.
type Lever struct{}

func (Lever) Name() string  { return "lever" }
func (Lever) Priority() int { return 2 }

func (Lever) ProbeURL(token string) string {
	return fmt.Sprintf("https://api.lever.co/v0/postings/%s?mode=json", token)
}

func (Lever) ListURL(token string, page int) string {
	return fmt.Sprintf("https://api.lever.co/v0/postings/%s?mode=json", token)
}

func (l Lever) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, nil
	}
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, false, nil
	}
	raw, _, err := l.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Lever) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, false, fmt.Errorf("lever: expected array response")
	}
	var jobs []models.RawJob
	result.ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:       j.Get("text").String(),
			Location:    j.Get("categories.location").String(),
			Department:  j.Get("categories.team").String(),
			URL:         j.Get("hostedUrl").String(),
			Description: j.Get("descriptionPlain").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Lever{}
