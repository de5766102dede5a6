package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
)

// ErrMalformedSource means the uploaded bytes could not be decoded as a
// workbook at all. Callers wrap it with which of the two inputs failed.
var ErrMalformedSource = errors.New("not a readable workbook")

// Parser wraps one uploaded workbook and hands its sheets out as raw rows.
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser creates a parser with a fresh file handle ID.
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile decodes a workbook from the reader.
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	p.file = file
	return nil
}

// FileID returns the handle ID assigned at creation.
func (p *Parser) FileID() string {
	return p.fileID
}

// Sheets lists the workbook's sheets with their row counts.
func (p *Parser) Sheets() ([]model.SheetInfo, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	names := p.file.GetSheetList()
	result := make([]model.SheetInfo, 0, len(names))

	for _, name := range names {
		rows, err := p.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, model.SheetInfo{
			Name:     name,
			RowCount: len(rows),
		})
	}

	return result, nil
}

// PickSheet selects which sheet a declared report type reads from. B2B and
// CDNR resolve by case-insensitive substring on the sheet name — the one
// place substring matching applies — and anything else falls back to the
// first sheet.
func (p *Parser) PickSheet(reportType model.ReportType) (string, error) {
	if p.file == nil {
		return "", errors.New("no file loaded")
	}

	names := p.file.GetSheetList()
	if len(names) == 0 {
		return "", errors.New("workbook has no sheets")
	}

	var want string
	switch reportType {
	case model.ReportTypeB2B:
		want = "b2b"
	case model.ReportTypeCDNR:
		want = "cdnr"
	default:
		return names[0], nil
	}

	for _, name := range names {
		if strings.Contains(strings.ToLower(name), want) {
			return name, nil
		}
	}
	return names[0], nil
}

// RawRows returns every row of a sheet as string cells, blanks included.
func (p *Parser) RawRows(sheet string) ([][]string, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}
	return p.file.GetRows(sheet)
}

// PreviewRows returns up to limit leading rows for the upload preview table.
func (p *Parser) PreviewRows(sheet string, limit int) ([][]string, error) {
	rows, err := p.RawRows(sheet)
	if err != nil {
		return nil, err
	}
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

// Close releases the underlying workbook.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
