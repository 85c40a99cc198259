package seedexpander

import "testing"

const markdownSample = `# Awesome Career Pages

- [Acme Corp](https://acme.com/careers)
- [Beta Inc](https://beta.com/jobs)
- [Back to top](#top)

## Contents
- [Gamma](https://gamma.io/careers)
`

func TestExtractMarkdownLinksSkipsNavigationEntries(t *testing.T) {
	names := extractMarkdownLinks([]byte(markdownSample))

	want := map[string]bool{"Acme Corp": true, "Beta Inc": true, "Gamma": true}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(names), names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected name extracted: %q", n)
		}
	}
}

func TestExtractMarkdownLinksEmptyBody(t *testing.T) {
	names := extractMarkdownLinks([]byte(""))
	if len(names) != 0 {
		t.Errorf("expected no names for empty body, got %v", names)
	}
}

const htmlDirectorySample = `
<html><body>
  <ul>
    <li class="company-name">Acme Robotics</li>
    <li class="company-name">Beta Systems</li>
    <li class="other">Not a company</li>
  </ul>
</body></html>
`

func TestExtractHTMLDirectory(t *testing.T) {
	names := extractHTMLDirectory([]byte(htmlDirectorySample), ".company-name")
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d: %v", len(names), names)
	}
	if names[0] != "Acme Robotics" || names[1] != "Beta Systems" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestSourceExtractStaticListIgnoresBody(t *testing.T) {
	src := Source{Kind: KindStaticList, Names: []string{"Acme", "Beta"}}
	got := src.Extract([]byte("irrelevant"))
	if len(got) != 2 || got[0] != "Acme" || got[1] != "Beta" {
		t.Errorf("expected static list names returned verbatim, got %v", got)
	}
}

func TestDefaultSourcesTierOrdering(t *testing.T) {
	for i := 1; i < len(DefaultSources); i++ {
		if DefaultSources[i-1].Tier > DefaultSources[i].Tier {
			t.Errorf("DefaultSources not tier-ordered at index %d: %d > %d",
				i, DefaultSources[i-1].Tier, DefaultSources[i].Tier)
		}
	}
}
