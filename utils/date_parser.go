package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const monthAlt = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

// dateGrammar pairs a matcher with the layouts its token is parsed against
// after separator normalization. Grammars are tried in a fixed priority
// order; the first one that both matches and survives calendar validation
// wins. A match that parses to an impossible date (day 31 in a 30-day
// month, Feb 29 off-leap) is discarded and the search continues.
type dateGrammar struct {
	pattern *regexp.Regexp
	layouts []string
}

// Slash-separated numeric dates are ambiguous between dd/MM and MM/dd. The
// dd/MM reading is tried first; MM/dd only applies when dd/MM is not a
// valid calendar date (e.g. 12/31/2023).
var dateGrammars = []dateGrammar{
	{regexp.MustCompile(`\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})\b`),
		[]string{"2/1/2006", "2/1/06", "1/2/2006", "1/2/06"}},
	{regexp.MustCompile(`\b(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})\b`),
		[]string{"2006/1/2"}},
	{regexp.MustCompile(`\b(\d{8})\b`),
		[]string{"20060102"}},
	{regexp.MustCompile(`(?i)\b(\d{1,2}(?:st|nd|rd|th)?\s+` + monthAlt + `[a-z]*\s+\d{2,4})\b`),
		[]string{"2 Jan 2006", "2 Jan 06"}},
	{regexp.MustCompile(`(?i)\b(` + monthAlt + `[a-z]*\s+\d{1,2}(?:st|nd|rd|th)?[,\s]\s*\d{2,4})\b`),
		[]string{"Jan 2, 2006", "Jan 2 2006", "Jan 2, 06"}},
	{regexp.MustCompile(`(?i)\b(\d{1,2}[/\-.]` + monthAlt + `[a-z]*[/\-.]\d{2,4})\b`),
		[]string{"2/Jan/2006", "2/Jan/06"}},
	{regexp.MustCompile(`(?i)\b(\d{1,2}-[A-Za-z]{3}-\d{2,4})\b`),
		[]string{"2/Jan/06", "2/Jan/2006"}},
	{regexp.MustCompile(`(?i)Date\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
		[]string{"2/1/2006", "2/1/06", "1/2/2006"}},
}

var (
	ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)`)
	monthName     = regexp.MustCompile(`(?i)\b` + monthAlt + `[a-z]*\b`)
)

// ExtractDate finds and parses the most likely transaction date in text.
// The boolean is false when no grammar yielded a calendar-valid date.
func ExtractDate(text string) (time.Time, bool) {
	for _, g := range dateGrammars {
		m := g.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		token := normalizeDateToken(m[1])
		parsed, ok := parseWithLayouts(token, g.layouts)
		if !ok {
			log.Debug().Str("token", m[1]).Msg("matched date token failed calendar validation")
			continue
		}
		return parsed, true
	}
	return time.Time{}, false
}

// normalizeDateToken rewrites a matched date into the form the layouts
// expect: hyphens and dots become slashes, ordinal suffixes drop, month
// names truncate to three letters.
func normalizeDateToken(token string) string {
	token = strings.ReplaceAll(token, "-", "/")
	token = strings.ReplaceAll(token, ".", "/")
	token = ordinalSuffix.ReplaceAllString(token, "$1")
	token = monthName.ReplaceAllStringFunc(token, func(m string) string {
		if len(m) > 3 {
			return m[:3]
		}
		return m
	})
	return token
}

func parseWithLayouts(token string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
