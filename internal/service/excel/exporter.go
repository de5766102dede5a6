package excel

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
	"github.com/pdstack5770/GSTR-2B-RECO/internal/recon"
)

// ErrNothingToExport rejects export of an empty category.
var ErrNothingToExport = errors.New("nothing to export")

// Exporter writes one result category to a downloadable workbook.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds a single-sheet workbook for one category of a result. The
// category name doubles as the sheet name. Empty categories are rejected.
func (e *Exporter) Export(result *model.Result, category string) (*excelize.File, error) {
	records, ok := result.Category(category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	columns := columnsFor(result, category)

	f := excelize.NewFile()
	sheetName := category
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	for i, rec := range records {
		row := i + 2
		for j, col := range columns {
			v, ok := rec[col]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	if len(columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(columns))
		f.SetColWidth(sheetName, "A", last, 18)
	}

	return f, nil
}

// columnsFor lays out a stable column order per category: ledger headers
// first, then status and difference columns, then the namespaced statement
// headers. Statement-only categories lead with the statement headers
// instead. Duplicate names collapse to one column.
func columnsFor(result *model.Result, category string) []string {
	var columns []string

	switch category {
	case "matched", "partiallyMatched":
		columns = append(columns, result.BooksHeaders...)
		columns = append(columns, recon.ColStatus, recon.ColTaxableValueDiff)
		columns = append(columns, recon.TaxDiffColumns...)
		columns = append(columns, prefixed(result.Gstr2bHeaders)...)
	case "invoicesInGstr2bNotInBook", "creditNotesInGstr2bNotInBook":
		columns = append(columns, result.Gstr2bHeaders...)
		columns = append(columns, recon.ColStatus)
	case "invoicesInBookNotInGstr2b", "creditNotesInBookNotInGstr2b":
		columns = append(columns, result.BooksHeaders...)
		columns = append(columns, recon.ColStatus)
	default: // report: every record shape in one sheet, tax diffs stripped
		columns = append(columns, result.BooksHeaders...)
		columns = append(columns, recon.ColStatus, recon.ColTaxableValueDiff)
		columns = append(columns, prefixed(result.Gstr2bHeaders)...)
		columns = append(columns, result.Gstr2bHeaders...)
	}

	seen := make(map[string]struct{}, len(columns))
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func prefixed(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = recon.Gstr2bPrefix + h
	}
	return out
}
