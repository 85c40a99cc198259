// -----------------------------------------------------------------------
// Candidate-token generation for the probe engine; the actual slug rules
// live in common.CandidateTokens so the Seed expander and this engine
// share one implementation.
// -----------------------------------------------------------------------

package probe

import "github.com/ternarybob/hireradar/internal/common"

// CandidateTokens returns up to maxVariants deterministic ATS token
// guesses for companyName, exact-slug-first.
func CandidateTokens(companyName string, maxVariants int) []string {
	return common.CandidateTokens(companyName, maxVariants)
}
