package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// SmartRecruiters parses api.smartrecruiters.com postings, which page via
// an offset/limit cursor.
type SmartRecruiters struct{}

func (SmartRecruiters) Name() string  { return "smartrecruiters" }
func (SmartRecruiters) Priority() int { return 5 }

func (SmartRecruiters) ProbeURL(token string) string {
	return fmt.Sprintf("https://api.smartrecruiters.com/v1/companies/%s/postings?limit=1", token)
}

func (SmartRecruiters) ListURL(token string, page int) string {
	offset := page * 100
	return fmt.Sprintf("https://api.smartrecruiters.com/v1/companies/%s/postings?limit=100&offset=%d", token, offset)
}

func (s SmartRecruiters) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "content").Exists() {
		return nil, false, nil
	}
	raw, _, err := s.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (SmartRecruiters) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("smartrecruiters: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "content").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title: j.Get("name").String(),
			Location: joinLocation(
				j.Get("location.city").String(),
				j.Get("location.region").String(),
				j.Get("location.country").String(),
			),
			Department: j.Get("department.label").String(),
			URL:        j.Get("ref").String(),
		})
		return true
	})
	totalFound := gjson.GetBytes(body, "totalFound").Int()
	offset := gjson.GetBytes(body, "offset").Int()
	returned := int64(len(jobs))
	hasNext := offset+returned < totalFound
	return jobs, hasNext, nil
}

var _ interfaces.ATSProvider = SmartRecruiters{}
