package ats

import "testing"

func TestNewRegistrySortedByPriorityAscending(t *testing.T) {
	reg := NewRegistry()
	providers := reg.Providers()

	if len(providers) != 15 {
		t.Fatalf("expected 15 providers, got %d", len(providers))
	}

	for i := 1; i < len(providers); i++ {
		if providers[i-1].Priority() > providers[i].Priority() {
			t.Errorf("providers not sorted by priority ascending at index %d: %d > %d",
				i, providers[i-1].Priority(), providers[i].Priority())
		}
	}
}

func TestRegistryByNameFindsKnownProviders(t *testing.T) {
	reg := NewRegistry()

	names := []string{
		"greenhouse", "lever", "ashby", "workday", "smartrecruiters",
		"icims", "taleo", "successfactors", "workable", "breezy",
		"recruitee", "personio", "teamtailor", "jazz", "pinpoint",
	}
	for _, name := range names {
		if _, ok := reg.ByName(name); !ok {
			t.Errorf("expected registry to contain provider %q", name)
		}
	}
}

func TestRegistryByNameUnknownReturnsFalse(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.ByName("not-a-real-ats"); ok {
		t.Error("expected ByName to return false for an unknown provider name")
	}
}

func TestRegistryNamesUnique(t *testing.T) {
	reg := NewRegistry()
	seen := map[string]bool{}
	for _, p := range reg.Providers() {
		if seen[p.Name()] {
			t.Errorf("duplicate provider name: %q", p.Name())
		}
		seen[p.Name()] = true
	}
}
