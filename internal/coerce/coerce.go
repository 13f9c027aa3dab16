// Package coerce turns heterogeneous cell content into the canonical scalar
// types the import pipeline works with: ISO calendar dates, positive decimal
// magnitudes with a separate sign flag, and transaction directions. All
// functions are pure and report failure through an ok flag rather than an
// error; the caller records failures as row-level reasons.
package coerce

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"fintrack/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const isoLayout = "2006-01-02"

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashDateRe  = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	currencyRe   = regexp.MustCompile(`(?i)chf|eur|usd|gbp|jpy|[€$£¥₣₹\s]`)
)

// fallbackLayouts are tried, in order, for date strings that match neither
// the ISO shape nor the numeric day/month/year shape.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2 January 2006",
	"January 2, 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// Date converts a cell into a YYYY-MM-DD string. Native dates are formatted
// in UTC; numbers are decoded as spreadsheet date serials; strings go through
// ISO passthrough, then the ambiguous D/M/YYYY rules, then a generic parse.
// Returns ("", false) when nothing applies.
//
// For ambiguous numeric dates the tie-break is day-first: 03/04/2024 is read
// as 3 April. Month-first is used only when the first component could be a
// month and the second could not.
func Date(v models.CellValue) (string, bool) {
	switch v.Kind {
	case models.CellDate:
		return v.Date.UTC().Format(isoLayout), true
	case models.CellNumber:
		t, err := excelize.ExcelDateToTime(v.Number, false)
		if err != nil {
			return "", false
		}
		return t.Format(isoLayout), true
	}

	s := strings.TrimSpace(v.Text)
	if s == "" {
		return "", false
	}
	if isoDateRe.MatchString(s) {
		return s, true
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		day, month := first, second
		if first <= 12 && second > 12 {
			day, month = second, first
		}
		return calendarDate(year, month, day)
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoLayout), true
		}
	}
	return "", false
}

// calendarDate validates y/m/d as a real calendar date and formats it.
// time.Date normalizes overflow (Feb 31 becomes Mar 2), so a round-trip
// mismatch means the components were out of range.
func calendarDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(isoLayout), true
}

// Amount converts a cell into a non-negative magnitude plus a sign flag.
// A value wrapped in parentheses is negative by accounting convention and is
// recognized before any minus-sign handling. Currency symbols, thousands
// separators and whitespace are stripped from strings; anything non-numeric
// left over fails the coercion. The magnitude is never negative.
func Amount(v models.CellValue) (amount decimal.Decimal, wasNegative bool, ok bool) {
	switch v.Kind {
	case models.CellNumber:
		d := decimal.NewFromFloat(v.Number)
		return d.Abs(), d.IsNegative(), true
	case models.CellDate:
		return decimal.Zero, false, false
	}

	s := strings.TrimSpace(v.Text)
	if s == "" {
		return decimal.Zero, false, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	s = currencyRe.ReplaceAllString(s, "")
	s = normalizeSeparators(s)
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}
	s = strings.TrimPrefix(s, "+")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, false
	}
	return d.Abs(), neg, true
}

// normalizeSeparators rewrites locale-formatted numbers into a form
// decimal.NewFromString accepts. Handles "1,234.56", "1.234,56", "1'234.56",
// "1234,56" and bare thousands groups like "1,234".
func normalizeSeparators(s string) string {
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// European style: dot groups thousands, comma is the decimal mark.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Comma is the decimal mark (1234,56).
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// incomeTokens and expenseTokens are the exact direction labels recognized
// after lower-casing. Looser labels fall through to substring matching.
var (
	incomeTokens  = map[string]struct{}{"income": {}, "revenue": {}, "credit": {}, "in": {}, "+": {}}
	expenseTokens = map[string]struct{}{"expense": {}, "burn": {}, "debit": {}, "out": {}, "-": {}}

	incomeHints  = []string{"inflow", "income", "revenue", "credit"}
	expenseHints = []string{"outflow", "expense", "debit", "burn"}
)

// Direction maps a free-form label to a transaction direction. Returns
// ("", false) when no rule matches; the caller then falls back to the sign
// of the amount or the file-level default.
func Direction(s string) (models.Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if _, ok := incomeTokens[s]; ok {
		return models.Income, true
	}
	if _, ok := expenseTokens[s]; ok {
		return models.Expense, true
	}
	for _, hint := range incomeHints {
		if strings.Contains(s, hint) {
			return models.Income, true
		}
	}
	for _, hint := range expenseHints {
		if strings.Contains(s, hint) {
			return models.Expense, true
		}
	}
	return "", false
}

// NormalizeText prepares a string for key comparison: trim, collapse
// internal whitespace runs, lower-case. Never used for display or storage.
func NormalizeText(s string) string {
	return strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " "))
}
