package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Breezy parses {token}.breezy.hr's public JSON positions feed.
type Breezy struct{}

func (Breezy) Name() string  { return "breezy" }
func (Breezy) Priority() int { return 10 }

func (Breezy) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.breezy.hr/json", token)
}

func (Breezy) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.breezy.hr/json", token)
}

func (b Breezy) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, false, nil
	}
	raw, _, err := b.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Breezy) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, false, fmt.Errorf("breezy: expected array response")
	}
	var jobs []models.RawJob
	result.ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("name").String(),
			Location:   j.Get("location.name").String(),
			Department: j.Get("department").String(),
			URL:        j.Get("url").String(),
		})
		return true
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Breezy{}
