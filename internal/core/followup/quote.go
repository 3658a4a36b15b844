package followup

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// quoteWindow is how much context is kept on each side of the match
	quoteWindow = 100
	// quoteMax is the hard cap on the final receipt string
	quoteMax = 200
)

var collapseRe = regexp.MustCompile(`\s+`)

// Quote builds the audit receipt for a match within body: up to quoteWindow
// characters of context on each side, whitespace collapsed, ellipses marking
// truncated edges, hard-capped at quoteMax characters
func Quote(body, match string) string {
	if body == "" || match == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(body), strings.ToLower(match))
	if idx < 0 {
		// match came from the subject; there is no body context to show
		return ""
	}

	start := idx - quoteWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(match) + quoteWindow
	if end > len(body) {
		end = len(body)
	}
	// never cut a rune in half; widen at the front, narrow at the back
	for start > 0 && !utf8.RuneStart(body[start]) {
		start--
	}
	for end > start && end < len(body) && !utf8.RuneStart(body[end]) {
		end--
	}

	q := strings.TrimSpace(collapseRe.ReplaceAllString(body[start:end], " "))
	if start > 0 {
		q = "..." + q
	}
	if end < len(body) {
		q += "..."
	}
	return CapQuote(q)
}

// CapQuote enforces the receipt length cap, replacing the tail with "..."
// when over length. The cut always lands on a rune boundary
func CapQuote(s string) string {
	if len(s) <= quoteMax {
		return s
	}
	cut := quoteMax - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
