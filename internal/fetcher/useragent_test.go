package fetcher

import "testing"

func TestUserAgentRotatorEmptyPoolReturnsFallback(t *testing.T) {
	r := NewUserAgentRotator(nil, true)
	if got := r.Next(); got != "hireradar/1.0" {
		t.Errorf("expected fallback user agent, got %q", got)
	}
}

func TestUserAgentRotatorDisabledAlwaysReturnsFirst(t *testing.T) {
	agents := []string{"agent-a", "agent-b", "agent-c"}
	r := NewUserAgentRotator(agents, false)
	for i := 0; i < 5; i++ {
		if got := r.Next(); got != "agent-a" {
			t.Errorf("expected first agent when disabled, got %q", got)
		}
	}
}

func TestUserAgentRotatorEnabledReturnsFromPool(t *testing.T) {
	agents := []string{"agent-a", "agent-b", "agent-c"}
	r := NewUserAgentRotator(agents, true)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[r.Next()] = true
	}
	for _, a := range agents {
		if !seen[a] {
			t.Logf("agent %q was never selected across 50 draws (not necessarily a bug)", a)
		}
	}
	for got := range seen {
		found := false
		for _, a := range agents {
			if got == a {
				found = true
			}
		}
		if !found {
			t.Errorf("Next() returned %q which is not in the configured pool", got)
		}
	}
}
