package model

import "strings"

// Record is one logical sheet row keyed by header name. Source sheets carry
// uncontrolled column sets, so anything beyond the canonical fields is kept
// verbatim and passed through untouched. All cell values arrive from the
// workbook reader as strings; a missing key means the cell was absent.
type Record map[string]string

// Get returns the trimmed value under a header. An empty header name always
// reads as empty, which lets callers treat unresolved columns uniformly.
func (r Record) Get(header string) string {
	if header == "" {
		return ""
	}
	return strings.TrimSpace(r[header])
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ReportType declares which GSTR-2B table the statement file was exported
// from. B2B and CDNR sheets are homogeneous by construction; Other means the
// first available sheet of an unlabeled workbook.
type ReportType string

const (
	ReportTypeB2B   ReportType = "B2B"
	ReportTypeCDNR  ReportType = "CDNR"
	ReportTypeOther ReportType = "Other"
)

// ParseReportType normalizes a declared report type, defaulting to Other.
func ParseReportType(s string) ReportType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B2B":
		return ReportTypeB2B
	case "CDNR":
		return ReportTypeCDNR
	default:
		return ReportTypeOther
	}
}

// SheetInfo describes one sheet of an uploaded workbook.
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}
