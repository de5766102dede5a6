package model

// Status classifies one output record of a reconciliation run.
type Status string

const (
	StatusMatched          Status = "Matched"
	StatusPartiallyMatched Status = "Partially Matched"
	StatusOnlyInBooks      Status = "Only in Books"
	StatusOnlyInGstr2b     Status = "Only in GSTR-2B"
)

// Summary aggregates counts for one run. TotalInBooks / TotalInGstr2b count
// materialized rows before consolidation, so they can exceed the sum of the
// status buckets: line items missing a GSTIN or invoice number are counted
// here but never reach matching. That mirrors the raw-volume reading of the
// totals and is intentional.
type Summary struct {
	TotalInBooks     int `json:"totalInBooks"`
	TotalInGstr2b    int `json:"totalInGstr2b"`
	Matched          int `json:"matched"`
	PartiallyMatched int `json:"partiallyMatched"`
	OnlyInBooks      int `json:"onlyInBooks"`
	OnlyInGstr2b     int `json:"onlyInGstr2b"`
}

// Result owns everything one reconciliation run derived. It is built once,
// never mutated afterwards, and lives only as long as the caller keeps it.
type Result struct {
	Summary Summary `json:"summary"`

	Matched          []Record `json:"matched"`
	PartiallyMatched []Record `json:"partiallyMatched"`

	InvoicesInBookNotInGstr2b    []Record `json:"invoicesInBookNotInGstr2b"`
	CreditNotesInBookNotInGstr2b []Record `json:"creditNotesInBookNotInGstr2b"`
	InvoicesInGstr2bNotInBook    []Record `json:"invoicesInGstr2bNotInBook"`
	CreditNotesInGstr2bNotInBook []Record `json:"creditNotesInGstr2bNotInBook"`

	// Report is the combined presentation sheet: matched, partially matched,
	// then both residuals, with the per-tax difference columns stripped.
	Report []Record `json:"report"`

	// Header orders of the two source sheets, kept for stable export layout.
	BooksHeaders  []string `json:"booksHeaders"`
	Gstr2bHeaders []string `json:"gstr2bHeaders"`
}

// Category resolves an export category name to its record sequence.
func (r *Result) Category(name string) ([]Record, bool) {
	switch name {
	case "matched":
		return r.Matched, true
	case "partiallyMatched":
		return r.PartiallyMatched, true
	case "invoicesInBookNotInGstr2b":
		return r.InvoicesInBookNotInGstr2b, true
	case "creditNotesInBookNotInGstr2b":
		return r.CreditNotesInBookNotInGstr2b, true
	case "invoicesInGstr2bNotInBook":
		return r.InvoicesInGstr2bNotInBook, true
	case "creditNotesInGstr2bNotInBook":
		return r.CreditNotesInGstr2bNotInBook, true
	case "report":
		return r.Report, true
	}
	return nil, false
}
