/*
Package detect classifies raw query text into synthetic candidates: web
addresses, e-mail addresses and JSON documents.

Detection is deliberately conservative. Inputs beyond a fixed length are
never scanned, the patterns are compiled once at startup, and any failure
degrades to "no detection": a query that cannot be classified simply
produces no synthetic candidates.
*/
package detect

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// maxInputLen bounds how much query text the detectors will look at.
// Anything longer is treated as undetectable free text.
const maxInputLen = 4096

var (
	schemeURLRe = regexp.MustCompile(`^https?://\S+$`)
	bareURLRe   = regexp.MustCompile(`^(www\.)?[a-z0-9][a-z0-9-]*(\.[a-z0-9][a-z0-9-]*)+(:\d+)?(/\S*)?$`)
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Detect inspects trimmed query text and returns the synthetic candidates
// it implies, in a fixed order: URL, email, JSON formatter. Most queries
// yield none.
func Detect(query string) []candidate.Candidate {
	text := strings.TrimSpace(query)
	if text == "" || len(text) > maxInputLen {
		return nil
	}

	var out []candidate.Candidate

	if url, ok := DetectURL(text); ok {
		out = append(out, candidate.NewURL(text, url))
	}
	if IsEmail(text) {
		out = append(out, candidate.NewEmail(text))
	}
	if IsJSON(text) {
		out = append(out, candidate.NewJSONFormatter())
	}
	return out
}

// DetectURL reports whether text is a web address and returns the navigable
// form (bare domains get an https:// scheme).
func DetectURL(text string) (string, bool) {
	if len(text) > maxInputLen {
		return "", false
	}
	if schemeURLRe.MatchString(text) {
		return text, true
	}
	if bareURLRe.MatchString(strings.ToLower(text)) {
		return "https://" + text, true
	}
	return "", false
}

// IsEmail reports whether text is a plain e-mail address.
func IsEmail(text string) bool {
	return len(text) <= maxInputLen && emailRe.MatchString(text)
}

// IsJSON reports whether text parses as a JSON object or array. A bare
// number or quoted string is not treated as a JSON document.
func IsJSON(text string) bool {
	if len(text) > maxInputLen {
		return false
	}
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		return false
	}
	return json.Valid([]byte(text))
}
