// -----------------------------------------------------------------------
// Normalizer - pure, deterministic transform from source-ATS-shaped raw
// records to the unified schema.
// -----------------------------------------------------------------------

package normalizer

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ternarybob/hireradar/internal/models"
)

var departmentSynonyms = map[string]string{
	"engineering": "Engineering",
	"eng":         "Engineering",
	"r&d":         "Engineering",
	"software":    "Engineering",
	"infrastructure": "Engineering",
	"design":      "Design",
	"ux":          "Design",
	"ui":          "Design",
	"product":     "Product",
	"pm":          "Product",
	"sales":       "Sales",
	"business development": "Sales",
	"marketing":   "Marketing",
	"growth":      "Marketing",
	"finance":     "Finance",
	"accounting":  "Finance",
	"people":      "People",
	"hr":          "People",
	"human resources": "People",
	"recruiting":  "People",
	"legal":       "Legal",
	"operations":  "Operations",
	"ops":         "Operations",
	"support":     "Customer Support",
	"customer success": "Customer Support",
	"data":        "Data",
	"analytics":   "Data",
}

var remoteCues = []string{"remote", "anywhere", "wfh"}
var hybridCues = []string{"hybrid"}

// countryTable maps the rightmost location token (case-folded) to its
// canonical country name. Unmatched tokens are kept verbatim as country.
var countryTable = map[string]string{
	"usa": "United States", "us": "United States", "united states": "United States",
	"uk": "United Kingdom", "united kingdom": "United Kingdom",
	"canada": "Canada", "germany": "Germany", "france": "France",
	"india": "India", "australia": "Australia", "ireland": "Ireland",
	"netherlands": "Netherlands", "spain": "Spain", "singapore": "Singapore",
	"poland": "Poland", "brazil": "Brazil", "mexico": "Mexico", "japan": "Japan",
}

// skillLexicon is a curated, lowercase skill vocabulary matched by
// substring against title+description.
var skillLexicon = []string{
	"go", "golang", "python", "java", "javascript", "typescript", "react",
	"vue", "angular", "node.js", "kubernetes", "docker", "aws", "gcp",
	"azure", "terraform", "sql", "postgresql", "mysql", "mongodb", "redis",
	"kafka", "graphql", "rest api", "machine learning", "tensorflow",
	"pytorch", "c++", "rust", "ruby", "rails", "swift", "kotlin", "scala",
	"spark", "airflow", "ci/cd", "microservices", "elasticsearch",
}

// Normalize converts one RawJob into a NormalizedJob owned by companyID.
func Normalize(companyID string, raw models.RawJob) models.NormalizedJob {
	department := normalizeDepartment(raw.Department)
	workType, city, region, country := parseLocation(raw.Location)
	skills := extractSkills(raw.Title, raw.Description)

	return models.NormalizedJob{
		JobHash:    JobHash(companyID, raw.Title, raw.Location),
		CompanyID:  companyID,
		Title:      strings.TrimSpace(raw.Title),
		Department: department,
		City:       city,
		Region:     region,
		Country:    country,
		WorkType:   workType,
		Skills:     skills,
		URL:        raw.URL,
	}
}

func normalizeDepartment(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if dept, ok := departmentSynonyms[key]; ok {
		return dept
	}
	for synonym, dept := range departmentSynonyms {
		if strings.Contains(key, synonym) {
			return dept
		}
	}
	return "Other"
}

// parseLocation splits on ","/"–"/"|", cross-references the rightmost token
// against countryTable, and classifies remote/hybrid cues.
func parseLocation(raw string) (workType models.WorkType, city, region, country string) {
	lower := strings.ToLower(raw)
	for _, cue := range remoteCues {
		if strings.Contains(lower, cue) {
			return models.WorkTypeRemote, "", "", ""
		}
	}

	workType = models.WorkTypeOnsite
	for _, cue := range hybridCues {
		if strings.Contains(lower, cue) {
			workType = models.WorkTypeHybrid
			break
		}
	}

	tokens := splitLocation(raw)
	if len(tokens) == 0 {
		return workType, "", "", ""
	}

	last := strings.ToLower(strings.TrimSpace(tokens[len(tokens)-1]))
	if canonical, ok := countryTable[last]; ok {
		country = canonical
	} else {
		country = strings.TrimSpace(tokens[len(tokens)-1])
	}

	rest := tokens[:len(tokens)-1]
	if len(rest) > 0 {
		region = strings.TrimSpace(rest[len(rest)-1])
	}
	if len(rest) > 1 {
		city = strings.TrimSpace(strings.Join(rest[:len(rest)-1], ", "))
	}

	return workType, city, region, country
}

func splitLocation(raw string) []string {
	normalized := strings.NewReplacer("–", ",", "|", ",").Replace(raw)
	var tokens []string
	for _, part := range strings.Split(normalized, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// extractSkills case-insensitively substring-matches title+description
// (HTML stripped) against skillLexicon, deduplicated and sorted.
func extractSkills(title, description string) []string {
	haystack := strings.ToLower(title + " " + stripHTML(description))

	seen := map[string]bool{}
	var found []string
	for _, skill := range skillLexicon {
		if strings.Contains(haystack, skill) && !seen[skill] {
			seen[skill] = true
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
