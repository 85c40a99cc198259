// -----------------------------------------------------------------------
// Source registry: a fixed, tiered table of seed sources, table-driven
// like the ATS registry. Grounded on original_source/seed_sources.py's
// scrape_* functions, generalized into one Extract function per source
// kind instead of one bespoke scraper per company list.
// -----------------------------------------------------------------------

package seedexpander

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/hireradar/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SourceKind selects which Extract implementation a Source uses.
type SourceKind int

const (
	KindMarkdownLinks SourceKind = iota
	KindHTMLDirectory
	KindStaticList
)

// Source is one row of the seed-source registry.
type Source struct {
	Name     string
	Tier     models.SeedTier
	Kind     SourceKind
	URL      string   // empty for KindStaticList
	Selector string   // CSS selector, KindHTMLDirectory only
	Names    []string // populated names, KindStaticList only
}

// DefaultSources is the fixed registry, ordered tier 1 first, grounded on
// the seven scrape_* sources of seed_sources.py.
var DefaultSources = []Source{
	{
		Name: "awesome-career-pages",
		Tier: models.SeedTierCurated,
		Kind: KindMarkdownLinks,
		URL:  "https://raw.githubusercontent.com/CSwala/awesome-career-pages/main/README.md",
	},
	{
		Name: "yc",
		Tier: models.SeedTierCurated,
		Kind: KindHTMLDirectory,
		URL:  "https://www.ycombinator.com/companies",
		Selector: `a[href^="/companies/"]`,
	},
	{
		Name:  "crunchbase-unicorn",
		Tier:  models.SeedTierCurated,
		Kind:  KindStaticList,
		Names: unicornCompanies,
	},
	{
		Name:  "forbes-cloud100",
		Tier:  models.SeedTierCurated,
		Kind:  KindStaticList,
		Names: cloud100Companies,
	},
	{
		Name:  "manual",
		Tier:  models.SeedTierCurated,
		Kind:  KindStaticList,
		Names: nil, // nothing fills this list, so the source yields no names
	},
	{
		Name:     "inc5000",
		Tier:     models.SeedTierBroad,
		Kind:     KindHTMLDirectory,
		URL:      "https://www.inc.com/inc5000/2023",
		Selector: ".company-name",
	},
	{
		Name:  "tech-companies",
		Tier:  models.SeedTierLongTail,
		Kind:  KindStaticList,
		Names: techCompanies,
	},
	{
		Name:  "healthcare",
		Tier:  models.SeedTierLongTail,
		Kind:  KindStaticList,
		Names: healthcareCompanies,
	},
}

var skipNames = map[string]bool{
	"top": true, "back to top": true, "contents": true, "contributing": true,
}

// extractMarkdownLinks walks a goldmark AST for "[Name](url)" link nodes,
// used for awesome-list style sources instead of a regex over raw text.
func extractMarkdownLinks(body []byte) []string {
	md := goldmark.New()
	reader := text.NewReader(body)
	doc := md.Parser().Parse(reader)

	var names []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		for c := link.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Segment.Value(body))
			}
		}
		name := strings.TrimSpace(buf.String())
		if name != "" && !skipNames[strings.ToLower(name)] {
			names = append(names, name)
		}
		return ast.WalkContinue, nil
	})
	return names
}

// extractHTMLDirectory reads anchor/element text matching selector off an
// HTML directory page.
func extractHTMLDirectory(body []byte, selector string) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	var names []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Text())
		if len(name) > 2 {
			names = append(names, name)
		}
	})
	return names
}

// Extract runs the source's kind-specific parser over a fetched body.
// KindStaticList ignores body and returns Names directly.
func (s Source) Extract(body []byte) []string {
	switch s.Kind {
	case KindMarkdownLinks:
		return extractMarkdownLinks(body)
	case KindHTMLDirectory:
		return extractHTMLDirectory(body, s.Selector)
	case KindStaticList:
		return s.Names
	default:
		return nil
	}
}
