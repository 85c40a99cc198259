package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Teamtailor parses the JSON:API-shaped public careers feed
// {token}.teamtailor.com/jobs.json exposes.
type Teamtailor struct{}

func (Teamtailor) Name() string  { return "teamtailor" }
func (Teamtailor) Priority() int { return 13 }

func (Teamtailor) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.teamtailor.com/jobs.json", token)
}

func (Teamtailor) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.teamtailor.com/jobs.json?page=%d", token, page+1)
}

func (t Teamtailor) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "jobs").Exists() {
		return nil, false, nil
	}
	raw, _, err := t.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Teamtailor) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("teamtailor: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "jobs").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:      j.Get("title").String(),
			Location:   j.Get("location").String(),
			Department: j.Get("department").String(),
			URL:        j.Get("url").String(),
		})
		return true
	})
	hasNext := gjson.GetBytes(body, "links.next").Exists()
	return jobs, hasNext, nil
}

var _ interfaces.ATSProvider = Teamtailor{}
