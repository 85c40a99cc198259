package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Pinpoint parses {token}.pinpointhq.com's public postings JSON feed.
type Pinpoint struct{}

func (Pinpoint) Name() string  { return "pinpoint" }
func (Pinpoint) Priority() int { return 15 }

func (Pinpoint) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.pinpointhq.com/postings.json", token)
}

func (Pinpoint) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.pinpointhq.com/postings.json", token)
}

func (p Pinpoint) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, false, nil
	}
	raw, _, err := p.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Pinpoint) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, false, fmt.Errorf("pinpoint: expected array response")
	}
	var jobs []models.RawJob
	result.ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("title").String(),
			Location:   j.Get("location").String(),
			Department: j.Get("department").String(),
			URL:        j.Get("url").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Pinpoint{}
