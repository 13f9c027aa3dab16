// Package importerror defines the typed errors used by the import pipeline.
// Structural and mapping errors are fatal to a whole import attempt; row
// validation problems are not errors at all but per-row reason strings on
// the ImportRowResult.
package importerror

import "fmt"

// StructuralError reports an input file whose overall shape is unusable:
// no sheet, no data rows, or an unparseable JSON document. No mapping is
// attempted after a structural error.
type StructuralError struct {
	Source string // "spreadsheet", "csv" or "json"
	Msg    string
	Err    error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unreadable %s input: %s: %v", e.Source, e.Msg, e.Err)
	}
	return fmt.Sprintf("unreadable %s input: %s", e.Source, e.Msg)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// MappingError reports that a required column role has no matching header.
// The message is user-facing and names the missing role.
type MappingError struct {
	Role string // "date", "counterparty", "category" or "amount"
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("Missing a %s column", e.Role)
}
