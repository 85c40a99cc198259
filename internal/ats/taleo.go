package ats

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Taleo scrapes Oracle Taleo's careers-section HTML listing; Taleo has no
// JSON surface on the free tier so this is the only viable path.
type Taleo struct{}

func (Taleo) Name() string  { return "taleo" }
func (Taleo) Priority() int { return 7 }

func (Taleo) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.taleo.net/careersection/jobsearch.ftl", token)
}

func (Taleo) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.taleo.net/careersection/jobsearch.ftl?start=%d", token, page*25)
}

func (p Taleo) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, nil
	}
	if doc.Find(".jobResultsRow, .taleoResult").Length() == 0 {
		return nil, false, nil
	}
	raw, _, err := p.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Taleo) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("taleo: parse html: %w", err)
	}
	var jobs []models.RawJob
	doc.Find(".jobResultsRow, .taleoResult").Each(func(_ int, row *goquery.Selection) {
		title := row.Find("a.titleLink, a").First().Text()
		if !nonEmpty(title) {
			return
		}
		url, _ := row.Find("a").First().Attr("href")
		jobs = append(jobs, models.RawJob{
			Title:    title,
			Location: row.Find(".jobLocation, .location").First().Text(),
			URL:      url,
		})
	})
	hasNext := doc.Find("a.next:not(.disabled)").Length() > 0
	return jobs, hasNext, nil
}

var _ interfaces.ATSProvider = Taleo{}
