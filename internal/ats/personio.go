package ats

import (
	"encoding/xml"
	"fmt"

	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Personio publishes its career-site feed as XML rather than JSON; the
// corpus carries no third-party XML library so this one provider parses
// with encoding/xml (see DESIGN.md).
type Personio struct{}

type personioFeed struct {
	XMLName  xml.Name         `xml:"workzag-jobs"`
	Postings []personioPosting `xml:"position"`
}

type personioPosting struct {
	Name       string `xml:"name"`
	Office     string `xml:"office"`
	Department string `xml:"department"`
	ID         string `xml:"id"`
}

func (Personio) Name() string  { return "personio" }
func (Personio) Priority() int { return 12 }

func (Personio) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.jobs.personio.de/xml", token)
}

func (Personio) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.jobs.personio.de/xml", token)
}

func (p Personio) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	var feed personioFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, false, nil
	}
	if len(feed.Postings) == 0 {
		return nil, false, nil
	}
	raw, _, err := p.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Personio) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	var feed personioFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, false, fmt.Errorf("personio: parse xml: %w", err)
	}
	var jobs []models.RawJob
	for _, posting := range feed.Postings {
		jobs = append(jobs, models.RawJob{
			Title:      posting.Name,
			Location:   posting.Office,
			Department: posting.Department,
			URL:        posting.ID,
		})
	}
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Personio{}
