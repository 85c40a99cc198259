package ats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Workday parses the CXS JSON endpoint myworkdayjobs.com career sites
// expose under the hood, avoiding the JS-rendered public UI entirely.
type Workday struct{}

func (Workday) Name() string  { return "workday" }
func (Workday) Priority() int { return 4 }

func (Workday) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.wd1.myworkdayjobs.com/wday/cxs/%s/External/jobs", token, token)
}

func (Workday) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.wd1.myworkdayjobs.com/wday/cxs/%s/External/jobs?offset=%d&limit=20", token, token, page*20)
}

func (w Workday) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "jobPostings").Exists() {
		return nil, false, nil
	}
	raw, _, err := w.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Workday) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	if !gjson.ValidBytes(body) {
		return nil, false, fmt.Errorf("workday: invalid json")
	}
	var jobs []models.RawJob
	gjson.GetBytes(body, "jobPostings").ForEach(func(_, j gjson.Result) bool {
		jobs = append(jobs, models.RawJob{
			Title:    j.Get("title").String(),
			Location: j.Get("locationsText").String(),
			URL:      j.Get("externalPath").String(),
		})
		return true
	})
	total := gjson.GetBytes(body, "total").Int()
	return jobs, int64(len(jobs)) > 0 && total > int64(len(jobs)), nil
}

var _ interfaces.ATSProvider = Workday{}
