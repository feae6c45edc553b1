package utils

import (
	"regexp"
	"strings"
)

var (
	newlineRuns = regexp.MustCompile(`\s*\n\s*`)
	spaceRuns   = regexp.MustCompile(`[^\S\n]{2,}`)
)

// NormalizeText collapses whitespace noise from OCR or PDF text extraction
// into a consistent form: runs of newlines (with any surrounding blank
// space) become a single newline, interior runs of spaces/tabs become a
// single space, and leading/trailing whitespace is trimmed. Newlines must
// be collapsed before spaces: line boundaries delimit statement rows and
// would be destroyed by a blanket whitespace collapse.
func NormalizeText(text string) string {
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
