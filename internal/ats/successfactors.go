package ats

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/hireradar/internal/interfaces"
	"github.com/ternarybob/hireradar/internal/models"
)

// SuccessFactors scrapes SAP SuccessFactors' public career-site HTML,
// same rationale as Taleo: no stable JSON surface worth depending on.
type SuccessFactors struct{}

func (SuccessFactors) Name() string  { return "successfactors" }
func (SuccessFactors) Priority() int { return 8 }

func (SuccessFactors) ProbeURL(token string) string {
	return fmt.Sprintf("https://career%s.sapsf.com/career", token)
}

func (SuccessFactors) ListURL(token string, page int) string {
	return fmt.Sprintf("https://career%s.sapsf.com/career?startRow=%d", token, page*25)
}

func (p SuccessFactors) ParseProbe(body []byte) (*models.JobBoard, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, nil
	}
	if doc.Find(".jobResultItem, .searchResultItem").Length() == 0 {
		return nil, false, nil
	}
	raw, _, err := p.ParseListing(body)
	if err != nil {
		return nil, false, err
	}
	return &models.JobBoard{Jobs: raw}, true, nil
}

func (SuccessFactors) ParseListing(body []byte) ([]models.RawJob, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("successfactors: parse html: %w", err)
	}
	var jobs []models.RawJob
	doc.Find(".jobResultItem, .searchResultItem").Each(func(_ int, row *goquery.Selection) {
		title := row.Find("a").First().Text()
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
	hasNext := doc.Find("a.pagination-next:not(.disabled)").Length() > 0
	return jobs, hasNext, nil
}

var _ interfaces.ATSProvider = SuccessFactors{}
