package normalizer

import (
	"reflect"
	"testing"

	"github.com/ternarybob/hireradar/internal/models"
)

func TestNormalizeDepartment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"exact match", "engineering", "Engineering"},
		{"abbreviation", "eng", "Engineering"},
		{"case insensitive", "SALES", "Sales"},
		{"substring match", "Senior Product Manager", "Product"},
		{"unknown falls back to other", "Astrophysics", "Other"},
		{"empty falls back to other", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeDepartment(tt.raw)
			if got != tt.want {
				t.Errorf("normalizeDepartment(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseLocationRemote(t *testing.T) {
	workType, city, region, country := parseLocation("Remote - US")
	if workType != models.WorkTypeRemote {
		t.Errorf("expected WorkTypeRemote, got %v", workType)
	}
	if city != "" || region != "" || country != "" {
		t.Errorf("expected remote location to have no city/region/country, got %q/%q/%q", city, region, country)
	}
}

func TestParseLocationHybrid(t *testing.T) {
	workType, _, _, country := parseLocation("Hybrid - Austin, TX, USA")
	if workType != models.WorkTypeHybrid {
		t.Errorf("expected WorkTypeHybrid, got %v", workType)
	}
	if country != "United States" {
		t.Errorf("expected canonical country United States, got %q", country)
	}
}

func TestParseLocationOnsiteWithCityRegionCountry(t *testing.T) {
	workType, city, region, country := parseLocation("San Francisco, CA, USA")
	if workType != models.WorkTypeOnsite {
		t.Errorf("expected WorkTypeOnsite, got %v", workType)
	}
	if city != "San Francisco" {
		t.Errorf("expected city San Francisco, got %q", city)
	}
	if region != "CA" {
		t.Errorf("expected region CA, got %q", region)
	}
	if country != "United States" {
		t.Errorf("expected country United States, got %q", country)
	}
}

func TestParseLocationUnknownCountryKeptVerbatim(t *testing.T) {
	_, _, _, country := parseLocation("Lagos, Nigeria")
	if country != "Nigeria" {
		t.Errorf("expected unmatched country kept verbatim, got %q", country)
	}
}

func TestParseLocationEmpty(t *testing.T) {
	workType, city, region, country := parseLocation("")
	if workType != models.WorkTypeOnsite {
		t.Errorf("expected default onsite work type for empty location, got %v", workType)
	}
	if city != "" || region != "" || country != "" {
		t.Errorf("expected empty location fields, got %q/%q/%q", city, region, country)
	}
}

func TestExtractSkillsDeduplicatedAndSorted(t *testing.T) {
	skills := extractSkills("Senior Go Engineer", "Experience with Go, Kubernetes, and go tooling required.")
	want := []string{"go", "kubernetes"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("extractSkills = %v, want %v", skills, want)
	}
}

func TestExtractSkillsStripsHTML(t *testing.T) {
	skills := extractSkills("Backend Role", "<p>Must know <b>Python</b> and <i>Docker</i></p>")
	want := []string{"docker", "python"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("extractSkills = %v, want %v", skills, want)
	}
}

func TestNormalizeProducesStableHashAndFields(t *testing.T) {
	raw := models.RawJob{
		Title:       "  Senior Go Engineer  ",
		Location:    "Remote",
		Department:  "Engineering",
		URL:         "https://example.com/jobs/1",
		Description: "Build things in Go.",
	}

	got := Normalize("company-1", raw)

	if got.CompanyID != "company-1" {
		t.Errorf("expected CompanyID company-1, got %q", got.CompanyID)
	}
	if got.Title != "Senior Go Engineer" {
		t.Errorf("expected trimmed title, got %q", got.Title)
	}
	if got.Department != "Engineering" {
		t.Errorf("expected department Engineering, got %q", got.Department)
	}
	if got.WorkType != models.WorkTypeRemote {
		t.Errorf("expected WorkTypeRemote, got %v", got.WorkType)
	}

	want := JobHash("company-1", raw.Title, raw.Location)
	if got.JobHash != want {
		t.Errorf("JobHash mismatch: got %q, want %q", got.JobHash, want)
	}
}
