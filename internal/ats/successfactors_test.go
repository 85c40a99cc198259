package ats

import "testing"

const successFactorsHTML = `<html><body>
<div class="jobResultItem"><a href="/job/1">Engineer</a><span class="jobLocation">Berlin</span></div>
<div class="searchResultItem"><a href="/job/2">Designer</a><span class="jobLocation">Munich</span></div>
<a class="pagination-next" href="?startRow=25">Next</a>
</body></html>`

func TestSuccessFactorsParseListingHappyPath(t *testing.T) {
	jobs, more, err := SuccessFactors{}.ParseListing([]byte(successFactorsHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if !more {
		t.Error("expected hasNext true when an enabled pagination-next link is present")
	}
	if jobs[0].Title != "Engineer" || jobs[0].Location != "Berlin" {
		t.Errorf("unexpected first job: %+v", jobs[0])
	}
}

func TestSuccessFactorsParseListingNoNextLink(t *testing.T) {
	html := `<div class="jobResultItem"><a href="/job/1">Engineer</a></div>`
	_, more, err := SuccessFactors{}.ParseListing([]byte(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("expected hasNext false without a pagination-next link")
	}
}

func TestSuccessFactorsParseProbeHitAndNoMatch(t *testing.T) {
	_, ok, err := SuccessFactors{}.ParseProbe([]byte(successFactorsHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected a hit for a page with jobResultItem markup")
	}

	_, ok, err = SuccessFactors{}.ParseProbe([]byte("<html><body>empty</body></html>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no hit without jobResultItem markup")
	}
}
