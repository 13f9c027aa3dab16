package models

// ColumnMapping is the fixed assignment of input column headers to semantic
// roles, computed once per import and reused for every row. Values are the
// actual header strings found in the file; optional roles are empty when no
// column fills them.
type ColumnMapping struct {
	DateColumn         string
	CounterpartyColumn string
	CategoryColumn     string
	AmountColumn       string
	DirectionColumn    string // optional
	MemoColumn         string // optional
}

// ImportRowResult is the outcome of normalizing and classifying one input
// row. A row with errors carries no transaction and is excluded from any
// commit path. Results live only for the duration of one import session.
type ImportRowResult struct {
	RowNumber       int // 1-based, counting the header row
	Transaction     *Transaction
	Errors          []string
	IsDuplicate     bool
	DuplicateReason string
}

// IsValid reports whether the row produced a committable transaction.
func (r *ImportRowResult) IsValid() bool {
	return len(r.Errors) == 0 && r.Transaction != nil
}
