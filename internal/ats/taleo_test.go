package ats

import "testing"

const taleoHTML = `<html><body>
<div class="jobResultsRow"><a class="titleLink" href="/job/1">Engineer</a><span class="jobLocation">Austin</span></div>
<div class="taleoResult"><a class="titleLink" href="/job/2">Designer</a><span class="jobLocation">Dallas</span></div>
<a class="next" href="?start=25">Next</a>
</body></html>`

func TestTaleoParseListingHappyPath(t *testing.T) {
	jobs, more, err := Taleo{}.ParseListing([]byte(taleoHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if !more {
		t.Error("expected hasNext true when an enabled next link is present")
	}
	if jobs[0].Title != "Engineer" || jobs[0].Location != "Austin" {
		t.Errorf("unexpected first job: %+v", jobs[0])
	}
}

func TestTaleoParseListingNoNextLink(t *testing.T) {
	html := `<div class="jobResultsRow"><a class="titleLink" href="/job/1">Engineer</a></div>`
	_, more, err := Taleo{}.ParseListing([]byte(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("expected hasNext false without a next link")
	}
}

func TestTaleoParseProbeHitAndNoMatch(t *testing.T) {
	_, ok, err := Taleo{}.ParseProbe([]byte(taleoHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected a hit for a page with jobResultsRow markup")
	}

	_, ok, err = Taleo{}.ParseProbe([]byte("<html><body>empty</body></html>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no hit without jobResultsRow markup")
	}
}
