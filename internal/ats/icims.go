package ats

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// ICIMS scrapes the HTML job search page iCIMS-hosted career sites serve;
// unlike the JSON-API providers, iCIMS has no stable public API so rows
// are read straight off the rendered listing table.
type ICIMS struct{}

func (ICIMS) Name() string  { return "icims" }
func (ICIMS) Priority() int { return 6 }

func (ICIMS) ProbeURL(token string) string {
	return fmt.Sprintf("https://%s.icims.com/jobs/search", token)
}

func (ICIMS) ListURL(token string, page int) string {
	return fmt.Sprintf("https://%s.icims.com/jobs/search?pr=%d", token, page*25)
}

func (p ICIMS) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, nil
	}
	if doc.Find(".iCIMS_JobsTable, .row.iCIMS_JobHeaderRow").Length() == 0 {
		return nil, false, nil
	}
	raw, _, err := p.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (ICIMS) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("icims: parse html: %w", err)
	}
	var jobs []models.RawJob
	doc.Find(".iCIMS_JobsTable .row.iCIMS_JobRow, tr.row").Each(func(_ int, row *goquery.Selection) {
		title := row.Find(".title, .iCIMS_JobTitle a, a.iCIMS_JobTitle").First().Text()
		if !nonEmpty(title) {
			return
		}
		url, _ := row.Find("a").First().Attr("href")
		jobs = append(jobs, models.RawJob{
			Title:    title,
			Location: row.Find(".location, .iCIMS_JobLocation").First().Text(),
			URL:      url,
		})
	})
	hasNext := doc.Find("a.iCIMS_Pagination_Next:not(.disabled)").Length() > 0
	return jobs, hasNext, nil
}

var _ interfaces.ATSProvider = ICIMS{}
