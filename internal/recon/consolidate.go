package recon

import (
	"strings"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
)

// consolidationKey joins GSTIN and invoice number, uppercased and trimmed.
// Internal whitespace is kept here; only the match key strips it.
func consolidationKey(rec model.Record, cols Columns) (string, bool) {
	gstin := strings.ToUpper(rec.Get(cols.GSTIN))
	billNo := strings.ToUpper(rec.Get(cols.BillNo))
	if gstin == "" || billNo == "" {
		return "", false
	}
	return gstin + billNo, true
}

// Consolidate merges line items sharing a (GSTIN, invoice number) key into
// one record per invoice, summing the resolved amount columns. Line items
// missing either key component are skipped entirely. Output keeps the order
// of first appearance, and amount cells of consolidated records are
// rewritten as exact decimal strings so repeated addition loses no precision.
func Consolidate(records []model.Record, cols Columns) []model.Record {
	out := make([]model.Record, 0, len(records))
	byKey := make(map[string]model.Record, len(records))

	for _, rec := range records {
		key, ok := consolidationKey(rec, cols)
		if !ok {
			continue
		}

		existing, seen := byKey[key]
		if !seen {
			merged := rec.Clone()
			for _, f := range AmountFields {
				h, ok := cols.Amounts[f]
				if !ok {
					continue
				}
				merged[h] = ParseAmount(rec.Get(h)).String()
			}
			byKey[key] = merged
			out = append(out, merged)
			continue
		}

		for _, f := range AmountFields {
			h, ok := cols.Amounts[f]
			if !ok {
				continue
			}
			sum := ParseAmount(existing.Get(h)).Add(ParseAmount(rec.Get(h)))
			existing[h] = sum.String()
		}
		if cols.LegalName != "" && existing.Get(cols.LegalName) == "" {
			existing[cols.LegalName] = rec[cols.LegalName]
		}
	}

	return out
}
