// -----------------------------------------------------------------------
// Slug and token generation - canonical company-name normalization shared
// by the Seed expander and the Probe engine's candidate generator.
// -----------------------------------------------------------------------

package common

import (
	"regexp"
	"strings"
)

var (
	corporateSuffixRe = regexp.MustCompile(`(?i)\s+(inc|llc|ltd|co|corp|gmbh|sa)\.?\s*$`)
	nonSlugCharsRe     = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapseRe     = regexp.MustCompile(`[\s-]+`)
	vowelRe            = regexp.MustCompile(`[aeiou]`)
)

// Slugify canonicalizes a company name: strip trailing corporate suffixes,
// drop non [a-z0-9\s-] characters, collapse whitespace/hyphens to a single
// '-', trim leading/trailing '-'. Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = corporateSuffixRe.ReplaceAllString(s, "")
	s = nonSlugCharsRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// CandidateTokens generates up to maxVariants deterministic ATS token
// guesses for a company name, ordered with the exact slug first (the
// registry's tie-break heuristic).
func CandidateTokens(name string, maxVariants int) []string {
	slug := Slugify(name)
	if slug == "" {
		return nil
	}

	seen := map[string]bool{}
	var out []string
	add := func(tok string) {
		if tok == "" || seen[tok] {
			return
		}
		seen[tok] = true
		out = append(out, tok)
	}

	add(slug)

	noHyphen := strings.ReplaceAll(slug, "-", "")
	add(noHyphen)

	underscored := strings.ReplaceAll(slug, "-", "_")
	add(underscored)

	words := strings.Split(slug, "-")
	if len(words) > 0 {
		add(words[0])
	}
	if len(words) > 1 {
		add(words[0] + words[1])
		add(words[0] + "-" + words[1])
	}

	if len(words) > 1 {
		initials := ""
		for _, w := range words {
			if len(w) > 0 {
				initials += w[:1]
			}
		}
		add(initials)
	}

	add(vowelRe.ReplaceAllString(slug, ""))
	add(vowelRe.ReplaceAllString(noHyphen, ""))

	for _, suffix := range []string{"app", "hq", "inc", "team", "jobs", "careers"} {
		add(slug + suffix)
		add(noHyphen + suffix)
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}
