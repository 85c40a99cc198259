package normalizer

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// JobHash computes the stable job key: md5(companyID + "|" + lower(title) +
// "|" + lower(location)) after trimming and whitespace collapse. Invariant
// under surrounding whitespace and case changes.
func JobHash(companyID, title, location string) string {
	norm := companyID + "|" + strings.ToLower(collapse(title)) + "|" + strings.ToLower(collapse(location))
	sum := md5.Sum([]byte(norm))
	return hex.EncodeToString(sum[:])
}

// CompanyID derives a stable id from (atsType, token): re-observing the same
// pair on a later pass MUST yield the same id.
func CompanyID(atsType, token string) string {
	norm := strings.ToLower(atsType) + "|" + strings.ToLower(token)
	sum := md5.Sum([]byte(norm))
	return hex.EncodeToString(sum[:])
}
