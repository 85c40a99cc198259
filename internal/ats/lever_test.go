package ats

import "testing"

const leverSample = `[
  {
    "text": "Staff Backend Engineer",
    "categories": {"location": "San Francisco", "team": "Engineering"},
    "hostedUrl": "https://jobs.lever.co/acme/1",
    "descriptionPlain": "Work on our Go backend."
  }
]`

func TestLeverParseListing(t *testing.T) {
	l := Lever{}
	jobs, more, err := l.ParseListing([]byte(leverSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("expected more=false")
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Title != "Staff Backend Engineer" {
		t.Errorf("unexpected title %q", jobs[0].Title)
	}
	if jobs[0].Location != "San Francisco" {
		t.Errorf("unexpected location %q", jobs[0].Location)
	}
	if jobs[0].Description != "Work on our Go backend." {
		t.Errorf("unexpected description %q", jobs[0].Description)
	}
}

func TestLeverParseListingRejectsNonArray(t *testing.T) {
	l := Lever{}
	_, _, err := l.ParseListing([]byte(`{"not": "an array"}`))
	if err == nil {
		t.Error("expected an error for a non-array response")
	}
}

func TestLeverParseProbeRejectsNonArray(t *testing.T) {
	l := Lever{}
	_, ok, err := l.ParseProbe([]byte(`{"jobs": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no probe hit for a non-array payload")
	}
}

func TestLeverParseProbeHit(t *testing.T) {
	l := Lever{}
	board, ok, err := l.ParseProbe([]byte(leverSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected probe hit on a valid array payload")
	}
	if len(board.Jobs) != 1 {
		t.Errorf("expected 1 job, got %d", len(board.Jobs))
	}
}
