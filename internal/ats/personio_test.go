package ats

import "testing"

const personioXML = `<workzag-jobs>
	<position><id>1</id><name>Engineer</name><office>Berlin</office><department>Eng</department></position>
	<position><id>2</id><name>Designer</name><office>Munich</office><department>Design</department></position>
</workzag-jobs>`

func TestPersonioParseListingHappyPath(t *testing.T) {
	jobs, more, err := Personio{}.ParseListing([]byte(personioXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Error("personio listing should never report more pages")
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Engineer" || jobs[0].Location != "Berlin" || jobs[0].Department != "Eng" {
		t.Errorf("unexpected first job: %+v", jobs[0])
	}
}

func TestPersonioParseListingInvalidXML(t *testing.T) {
	_, _, err := Personio{}.ParseListing([]byte("not xml"))
	if err == nil {
		t.Error("expected an error for invalid xml")
	}
}

func TestPersonioParseProbeHitAndNoMatch(t *testing.T) {
	_, ok, err := Personio{}.ParseProbe([]byte(personioXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected a hit for a feed with postings")
	}

	_, ok, err = Personio{}.ParseProbe([]byte(`<workzag-jobs></workzag-jobs>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no hit for an empty postings feed")
	}
}
