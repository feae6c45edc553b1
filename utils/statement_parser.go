package utils

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

// strictRowPattern is the fixed-order column grammar for a statement line:
// date, one-word description, category, amount, debit/credit marker.
var strictRowPattern = regexp.MustCompile(
	`(?i)^(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})\s+(\w+)\s+([A-Za-z]+)\s+([0-9][0-9,]*(?:\.[0-9]{1,2})?)\s+(debit|credit)$`)

// Known header/footer shapes: bare page numbers, the column header row and
// "Table N" markers carry no transaction data.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Table\s+\d+$`),
	regexp.MustCompile(`(?i)^Date\s*Description\s*Category\s*Amount\s*Type$`),
	regexp.MustCompile(`^\d+$`),
}

// ParseTabularStatement segments multi-line statement text into transaction
// rows. Each surviving line is first matched against the strict column
// grammar; only if that pass recovers zero rows does a permissive
// whitespace-split fallback run. Malformed lines are logged and dropped,
// never fatal: the function returns whatever valid rows it could recover,
// and an empty slice means "nothing recoverable". The only error condition
// is an empty input string.
func ParseTabularStatement(rawText string) ([]dto.StatementRow, error) {
	if rawText == "" {
		return nil, dto.ErrEmptyText
	}

	var lines []string
	for _, line := range strings.Split(NormalizeText(rawText), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isHeaderLine(line) {
			continue
		}
		lines = append(lines, line)
	}

	rows := parseStrictRows(lines)
	if len(rows) == 0 {
		rows = parseLooseRows(lines)
	}

	if len(rows) == 0 {
		log.Warn().Int("lines", len(lines)).Msg("no valid rows extracted from statement text")
	}
	return rows, nil
}

func isHeaderLine(line string) bool {
	for _, p := range headerPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func parseStrictRows(lines []string) []dto.StatementRow {
	rows := make([]dto.StatementRow, 0, len(lines))
	for _, line := range lines {
		m := strictRowPattern.FindStringSubmatch(line)
		if m == nil {
			log.Debug().Str("line", line).Msg("line does not match row grammar")
			continue
		}
		date, ok := ExtractDate(m[1])
		if !ok {
			log.Warn().Str("line", line).Msg("dropping row with invalid date")
			continue
		}
		amount, ok := parseMoney(m[4])
		if !ok {
			log.Warn().Str("line", line).Msg("dropping row with invalid amount")
			continue
		}
		rows = append(rows, dto.StatementRow{
			Date:        date,
			Description: m[2],
			Category:    m[3],
			Amount:      amount,
			Type:        dto.EntryType(strings.ToLower(m[5])),
		})
	}
	return rows
}

// parseLooseRows is the fallback for statements whose column spacing broke
// the strict grammar. Column positions are assumed: first token is the
// date, last is the debit/credit marker, second-to-last the amount,
// third-from-last the category, and everything between date and category is
// the description. Statements with a different column order will mis-assign
// fields here; the strict pass is the one that checks shape.
func parseLooseRows(lines []string) []dto.StatementRow {
	rows := make([]dto.StatementRow, 0, len(lines))
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		date, ok := ExtractDate(parts[0])
		if !ok {
			log.Debug().Str("line", line).Msg("fallback row has no parseable date")
			continue
		}
		amount, ok := parseMoney(parts[len(parts)-2])
		if !ok {
			log.Debug().Str("line", line).Msg("fallback row has no parseable amount")
			continue
		}
		entryType := strings.ToLower(parts[len(parts)-1])
		if entryType != string(dto.EntryDebit) && entryType != string(dto.EntryCredit) {
			continue
		}
		rows = append(rows, dto.StatementRow{
			Date:        date,
			Description: strings.Join(parts[1:len(parts)-3], " "),
			Category:    parts[len(parts)-3],
			Amount:      amount,
			Type:        dto.EntryType(entryType),
		})
	}
	return rows
}
