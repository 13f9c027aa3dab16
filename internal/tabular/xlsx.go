package tabular

import (
	"io"

	"fintrack/fintrack/internal/importerror"
	"fintrack/fintrack/internal/models"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX extracts records from the first sheet of a workbook. Cells are
// read raw, so date cells surface as their numeric serials and flow through
// the same date-serial decoding as any other numeric date.
func ParseXLSX(r io.Reader) ([]models.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &importerror.StructuralError{Source: "spreadsheet", Msg: "could not open workbook", Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &importerror.StructuralError{Source: "spreadsheet", Msg: "no sheets found"}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &importerror.StructuralError{Source: "spreadsheet", Msg: "could not read sheet", Err: err}
	}
	return tableToRecords(rows, "spreadsheet")
}
