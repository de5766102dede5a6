package recon

import (
	"fmt"
	"strings"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
)

// Materialize zips the located header row with every row below it, producing
// one Record per row. Cells beyond the header length, and cells under an
// empty header name, are dropped. Rows whose every surviving value is blank
// are discarded.
func Materialize(headers []string, rows [][]string) ([]model.Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(model.Record, len(headers))
		empty := true
		for j, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" || j >= len(row) {
				continue
			}
			rec[h] = row[j]
			if strings.TrimSpace(row[j]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// Dataset is one fully prepared source: located headers, materialized
// records and resolved canonical columns.
type Dataset struct {
	Headers []string
	Records []model.Record
	Columns Columns
}

// BuildDataset runs header location, materialization and column resolution
// over one raw sheet.
func BuildDataset(rows [][]string, cfg AliasConfig) (*Dataset, error) {
	idx, headers, err := LocateHeader(rows, cfg)
	if err != nil {
		return nil, err
	}

	records, err := Materialize(headers, rows[idx+1:])
	if err != nil {
		return nil, err
	}

	cols := ResolveColumns(headers, cfg)
	if cols.GSTIN == "" {
		return nil, fmt.Errorf("%w: gstin", ErrMissingRequiredColumn)
	}
	if cols.BillNo == "" {
		return nil, fmt.Errorf("%w: invoice number", ErrMissingRequiredColumn)
	}

	return &Dataset{
		Headers: headers,
		Records: records,
		Columns: cols,
	}, nil
}
