package ats

import "testing"

func TestWorkableParseListingHappyPath(t *testing.T) {
	body := []byte(`{"jobs":[
		{"title":"Engineer","city":"London","country":"United Kingdom","department":"Eng","url":"https://apply.workable.com/acme/j/1"},
		{"title":"Designer","city":"","country":"","department":"Design","url":"https://apply.workable.com/acme/j/2"}
	]}`)

	jobs, more, err := Workable{}.ParseListing(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("workable listing should never report more pages")
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Engineer" || jobs[0].Location != "London, United Kingdom" {
		t.Errorf("unexpected first job: %+v", jobs[0])
	}
	if jobs[1].Location != "" {
		t.Errorf("expected empty location when city/country blank, got %q", jobs[1].Location)
	}
}

func TestWorkableParseListingInvalidJSON(t *testing.T) {
	_, _, err := Workable{}.ParseListing([]byte("not json"))
	if err == nil {
		t.Error("expected an error for invalid json")
	}
}

func TestWorkableParseProbeHitAndNoMatch(t *testing.T) {
	_, ok, err := Workable{}.ParseProbe([]byte(`{"jobs":[{"title":"Engineer"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected a hit when jobs key is present")
	}

	_, ok, err = Workable{}.ParseProbe([]byte(`{"foo":"bar"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no hit when jobs key is absent")
	}
}
