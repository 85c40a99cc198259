package ats

import "testing"

func TestAshbyParseListingHappyPath(t *testing.T) {
	body := []byte(`{"jobs":[
		{"title":"Engineer","location":"Remote","department":"Eng","jobUrl":"https://ashby.io/1","descriptionPlain":"build stuff"},
		{"title":"Designer","location":"NYC","department":"Design","jobUrl":"https://ashby.io/2","descriptionPlain":"design stuff"}
	]}`)

	jobs, more, err := Ashby{}.ParseListing(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("ashby listing should never report more pages")
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Engineer" || jobs[0].Location != "Remote" || jobs[0].Department != "Eng" {
		t.Errorf("unexpected first job: %+v", jobs[0])
	}
}

func TestAshbyParseListingInvalidJSON(t *testing.T) {
	_, _, err := Ashby{}.ParseListing([]byte("not json"))
	if err == nil {
		t.Error("expected an error for invalid json")
	}
}

func TestAshbyParseProbeHit(t *testing.T) {
	body := []byte(`{"jobs":[{"title":"Engineer"}]}`)
	board, ok, err := Ashby{}.ParseProbe(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(board.Jobs) != 1 {
		t.Errorf("expected 1 job in board, got %d", len(board.Jobs))
	}
}

func TestAshbyParseProbeNoMatch(t *testing.T) {
	_, ok, err := Ashby{}.ParseProbe([]byte(`{"foo":"bar"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no hit when jobs key is absent")
	}
}

func TestAshbyURLFormats(t *testing.T) {
	if got := Ashby{}.ProbeURL("acme"); got != "https://api.ashbyhq.com/posting-api/job-board/acme" {
		t.Errorf("unexpected probe url: %s", got)
	}
	if got := Ashby{}.ListURL("acme", 1); got != "https://api.ashbyhq.com/posting-api/job-board/acme?includeCompensation=false" {
		t.Errorf("unexpected list url: %s", got)
	}
}
