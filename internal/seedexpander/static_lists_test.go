package seedexpander

import "testing"

func TestStaticCompanyListsAreNonEmptyAndDeduplicated(t *testing.T) {
	lists := map[string][]string{
		"unicornCompanies":    unicornCompanies,
		"cloud100Companies":   cloud100Companies,
		"techCompanies":       techCompanies,
		"healthcareCompanies": healthcareCompanies,
	}
	for name, list := range lists {
		if len(list) == 0 {
			t.Errorf("%s: expected a non-empty list", name)
		}
		seen := make(map[string]bool, len(list))
		for _, company := range list {
			if company == "" {
				t.Errorf("%s: contains an empty company name", name)
			}
			if seen[company] {
				t.Errorf("%s: duplicate company name %q", name, company)
			}
			seen[company] = true
		}
	}
}
