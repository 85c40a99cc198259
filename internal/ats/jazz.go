package ats

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// Jazz (JazzHR) careers pages ship as static server-rendered HTML; no
// public JSON surface is documented so this scrapes the listing markup.
type Jazz struct{}

func (Jazz) Name() string  { return "jazz" }
func (Jazz) Priority() int { return 14 }

func (Jazz) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.applytojob.com/apply", token)
}

func (Jazz) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.applytojob.com/apply", token)
}

func (p Jazz) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, nil
	}
	if doc.Find(".job-listing, .list-group-item").Length() == 0 {
		return nil, false, nil
	}
	raw, _, err := p.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (Jazz) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("jazz: parse html: %w", err)
	}
	var jobs []models.RawJob
	doc.Find(".job-listing, .list-group-item").Each(func(_ int, row *goquery.Selection) {
		title := row.Find("a").First().Text()
		if !nonEmpty(title) {
			return
		}
		url, _ := row.Find("a").First().Attr("href")
		jobs = append(jobs, models.RawJob{
			Title:    title,
			Location: row.Find(".job-location, .location").First().Text(),
			URL:      url,
		})
	})
	return jobs, false, nil
}

var _ interfaces.ATSProvider = Jazz{}
