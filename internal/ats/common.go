// -----------------------------------------------------------------------
// Package ats holds the capability table of interfaces.ATSProvider
// implementations: one file per provider, registered in priority order
// by registry.go. Each provider is a pure
// parser over bytes the Fetcher already retrieved; none perform I/O
// themselves, one connector per ATS source.
// -----------------------------------------------------------------------

package ats

import (
	"strings"
)

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

func joinLocation(parts ...string) string {
	var out []string
	for _, p := range parts {
		if nonEmpty(p) {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return strings.Join(out, ", ")
}
