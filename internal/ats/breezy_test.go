package ats

import "testing"

func TestBreezyParseListingHappyPath(t *testing.T) {
	body := []byte(`[
		{"name":"Engineer","location":{"name":"Remote"},"department":"Eng","url":"https://acme.breezy.hr/p/1"},
		{"name":"Designer","location":{"name":"NYC"},"department":"Design","url":"https://acme.breezy.hr/p/2"}
	]`)

	jobs, more, err := Breezy{}.ParseListing(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("breezy listing should never report more pages")
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Engineer" || jobs[0].Location != "Remote" {
		t.Errorf("unexpected first job: %+v", jobs[0])
	}
}

func TestBreezyParseListingRejectsNonArray(t *testing.T) {
	_, _, err := Breezy{}.ParseListing([]byte(`{"name":"not an array"}`))
	if err == nil {
		t.Error("expected an error for a non-array response")
	}
}

func TestBreezyParseProbeNonArrayNoHit(t *testing.T) {
	_, ok, err := Breezy{}.ParseProbe([]byte(`{"foo":"bar"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no hit for a non-array body")
	}
}

func TestBreezyParseProbeValidArrayHit(t *testing.T) {
	body := []byte(`[{"name":"Engineer","location":{"name":"Remote"}}]`)
	board, ok, err := Breezy{}.ParseProbe(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit for a valid array body")
	}
	if len(board.Jobs) != 1 {
		t.Errorf("expected 1 job, got %d", len(board.Jobs))
	}
}
