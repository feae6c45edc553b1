package utils

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// moneyToken matches an optionally currency-prefixed figure with up to two
// decimal places. Currency symbols and thousand-separator commas are
// stripped again before numeric parsing.
const moneyToken = `([£€$₹]?\s*[0-9][0-9,]*(?:\.[0-9]{1,2})?)`

var (
	taxPattern        = regexp.MustCompile(`(?i)\btax\s*[:=~]?\s*` + moneyToken + `\b`)
	totalPattern      = regexp.MustCompile(`(?i)\btotal\s*[:=~]?\s*` + moneyToken + `\b`)
	keywordPattern    = regexp.MustCompile(`(?i)\b(?:amount|sale|subtotal)\s*[:=~]?\s*` + moneyToken + `\b`)
	standalonePattern = regexp.MustCompile(`\b` + moneyToken + `\b`)

	// Tolerance for reconciling a tax-inclusive total against subtotal+tax.
	reconcileTolerance = decimal.New(1, -2)

	minPlausibleAmount = decimal.NewFromInt(1)
)

type amountCandidate struct {
	value  decimal.Decimal
	tier   int
	source string
}

// ExtractAmount finds the most likely monetary total in normalized receipt
// text. Candidates are collected from three pattern tiers:
//
//	0: "total" followed by a figure
//	1: "amount" / "sale" / "subtotal" followed by a figure
//	2: any standalone figure
//
// The first tier-0 candidate wins, else the first tier-1 candidate. If any
// candidate from any tier equals the selection plus the summed "tax"
// figures within 0.01, that candidate is preferred instead: it is the
// tax-inclusive total reconciling against a pre-tax subtotal. When no
// keyword-anchored candidate exists, the largest standalone figure >= 1 is
// used; figures below 1 are implausible as receipt totals. The boolean is
// false when nothing qualified.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	taxTotal := decimal.Zero
	for _, m := range taxPattern.FindAllStringSubmatch(text, -1) {
		if v, ok := parseMoney(m[1]); ok {
			taxTotal = taxTotal.Add(v)
		}
	}

	var candidates []amountCandidate
	for tier, re := range []*regexp.Regexp{totalPattern, keywordPattern, standalonePattern} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, ok := parseMoney(m[1]); ok {
				candidates = append(candidates, amountCandidate{value: v, tier: tier, source: m[0]})
			}
		}
	}

	var selected *amountCandidate
	for wantTier := 0; wantTier <= 1 && selected == nil; wantTier++ {
		for i := range candidates {
			if candidates[i].tier == wantTier {
				selected = &candidates[i]
				break
			}
		}
	}

	if selected != nil {
		if taxTotal.IsPositive() {
			inclusive := selected.value.Add(taxTotal)
			for _, c := range candidates {
				if c.value.Sub(inclusive).Abs().LessThan(reconcileTolerance) {
					log.Debug().
						Str("selected", selected.value.String()).
						Str("reconciled", c.value.String()).
						Msg("preferring tax-inclusive total")
					return c.value, true
				}
			}
		}
		return selected.value, true
	}

	// No keyword-anchored figure anywhere: take the largest standalone
	// figure that is plausible as a total.
	best := decimal.Zero
	found := false
	for _, m := range standalonePattern.FindAllStringSubmatch(text, -1) {
		v, ok := parseMoney(m[1])
		if !ok || v.LessThan(minPlausibleAmount) {
			continue
		}
		if !found || v.GreaterThan(best) {
			best = v
			found = true
		}
	}
	if found {
		return best, true
	}

	log.Debug().Msg("no amount found in text")
	return decimal.Decimal{}, false
}

var moneyCleaner = strings.NewReplacer(",", "", "£", "", "€", "", "$", "", "₹", "")

// parseMoney strips currency symbols and thousand separators from a matched
// figure and parses it as a decimal. Negative values never parse: the token
// pattern carries no sign.
func parseMoney(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(moneyCleaner.Replace(raw))
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil || v.IsNegative() {
		return decimal.Decimal{}, false
	}
	return v, true
}
