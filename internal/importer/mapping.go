// Package importer implements the ledger import pipeline: column role
// detection, row normalization and validation, duplicate classification
// against an existing ledger snapshot, and the sequential batch commit.
package importer

import (
	"regexp"
	"sort"
	"strings"

	"fintrack/fintrack/internal/importerror"
	"fintrack/fintrack/internal/models"
)

// MaxImportRows caps how many data rows of a file are processed. Rows beyond
// the cap are silently ignored; this is a documented limit, not an error.
const MaxImportRows = 1000

var headerStripRe = regexp.MustCompile(`[^a-z0-9]`)

// normalizeHeader reduces a header to its comparable form: lower-cased with
// every non-alphanumeric character removed, so "Posting Date", "posting_date"
// and "PostingDate" all land on "postingdate".
func normalizeHeader(h string) string {
	return headerStripRe.ReplaceAllString(strings.ToLower(h), "")
}

// Candidate lists per role, in priority order. The first normalized name
// present among the headers wins; order encodes priority, not scoring.
var (
	dateCandidates = []string{
		"date", "postingdate", "transactiondate", "txndate", "bookingdate", "valuedate", "when",
	}
	counterpartyCandidates = []string{
		"counterparty", "payee", "vendor", "merchant", "client", "customer", "party", "name", "description",
	}
	categoryCandidates = []string{
		"category", "categoryname", "expensecategory", "class", "classification",
	}
	amountCandidates = []string{
		"amount", "value", "total", "sum",
	}
	directionCandidates = []string{
		"direction", "type", "transactiontype", "creditdebit", "drcr", "inout", "flow", "kind",
	}
	memoCandidates = []string{
		"memo", "note", "notes", "comment", "comments", "details", "remarks", "reference",
	}
)

// DetectMapping infers which header fills which semantic role from the
// header set of the first record. It is computed once per import and reused
// for every row. Date, counterparty, category and amount are required; a
// missing role fails the whole import with a role-specific MappingError.
// Direction and memo are optional.
//
// The result depends only on which headers exist, not on their order.
func DetectMapping(records []models.RawRecord) (models.ColumnMapping, error) {
	var mapping models.ColumnMapping
	if len(records) == 0 {
		return mapping, &importerror.StructuralError{Source: "table", Msg: "no data rows found"}
	}

	// Sorting before insertion keeps collisions between headers that
	// normalize identically deterministic.
	headers := make([]string, 0, len(records[0]))
	for h := range records[0] {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	byNorm := make(map[string]string, len(headers))
	norms := make([]string, 0, len(headers))
	for _, h := range headers {
		n := normalizeHeader(h)
		if n == "" {
			continue
		}
		if _, taken := byNorm[n]; !taken {
			byNorm[n] = h
			norms = append(norms, n)
		}
	}

	find := func(candidates []string) string {
		for _, c := range candidates {
			if h, ok := byNorm[c]; ok {
				return h
			}
		}
		return ""
	}

	if mapping.DateColumn = find(dateCandidates); mapping.DateColumn == "" {
		return mapping, &importerror.MappingError{Role: "date"}
	}
	if mapping.CounterpartyColumn = find(counterpartyCandidates); mapping.CounterpartyColumn == "" {
		return mapping, &importerror.MappingError{Role: "counterparty"}
	}
	if mapping.CategoryColumn = find(categoryCandidates); mapping.CategoryColumn == "" {
		return mapping, &importerror.MappingError{Role: "category"}
	}
	mapping.AmountColumn = find(amountCandidates)
	if mapping.AmountColumn == "" {
		// Fallback: any header whose normalized form starts with "amount",
		// e.g. "Amount (CHF)" or "AmountUSD".
		for _, n := range norms {
			if strings.HasPrefix(n, "amount") {
				mapping.AmountColumn = byNorm[n]
				break
			}
		}
	}
	if mapping.AmountColumn == "" {
		return mapping, &importerror.MappingError{Role: "amount"}
	}

	mapping.DirectionColumn = find(directionCandidates)
	mapping.MemoColumn = find(memoCandidates)
	return mapping, nil
}
