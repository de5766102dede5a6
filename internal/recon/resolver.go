package recon

import "strings"

// ResolveColumn finds the sheet header backing one canonical field. Aliases
// are tried in priority order; for each alias the headers are scanned in
// sheet order for a trimmed, case-insensitive exact match, and the first hit
// wins. The second return is false when no alias matched any header.
func ResolveColumn(headers []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(alias)) {
				return h, true
			}
		}
	}
	return "", false
}

// Columns holds the literal headers a sheet resolved for the canonical
// fields. An empty string (or a missing Amounts key) means the field is
// absent from the sheet; only GSTIN and BillNo are mandatory.
type Columns struct {
	GSTIN     string
	BillNo    string
	LegalName string
	Amounts   map[Field]string
}

// ResolveColumns resolves every canonical field against one header set.
func ResolveColumns(headers []string, cfg AliasConfig) Columns {
	cols := Columns{Amounts: make(map[Field]string, len(AmountFields))}

	cols.GSTIN, _ = ResolveColumn(headers, cfg[FieldGSTIN])
	cols.BillNo, _ = ResolveColumn(headers, cfg[FieldBillNo])
	cols.LegalName, _ = ResolveColumn(headers, cfg[FieldLegalName])

	for _, f := range AmountFields {
		if h, ok := ResolveColumn(headers, cfg[f]); ok {
			cols.Amounts[f] = h
		}
	}
	return cols
}
