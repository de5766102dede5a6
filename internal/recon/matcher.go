package recon

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
)

// toleranceUnits is the absolute currency-unit band absorbed as rounding
// noise. It applies identically to every amount difference in the exact
// phase and to the taxable value alone in the tolerant phase.
const toleranceUnits = 2

// Gstr2bPrefix namespaces statement fields merged into a matched output
// record, keeping them clear of same-named ledger columns.
const Gstr2bPrefix = "GSTR-2B: "

// ColStatus carries the reconciliation status on every output record.
const ColStatus = "Status"

// Difference columns attached to matched records. The taxable one survives
// into the combined report; the per-tax ones stay in the category sets only.
const (
	ColTaxableValueDiff  = "Taxable Value Diff"
	ColIntegratedTaxDiff = "Integrated Tax Diff"
	ColCentralTaxDiff    = "Central Tax Diff"
	ColStateTaxDiff      = "State Tax Diff"
	ColCessDiff          = "Cess Diff"
)

var diffColumns = map[Field]string{
	FieldTaxableValue:  ColTaxableValueDiff,
	FieldIntegratedTax: ColIntegratedTaxDiff,
	FieldCentralTax:    ColCentralTaxDiff,
	FieldStateTax:      ColStateTaxDiff,
	FieldCess:          ColCessDiff,
}

// TaxDiffColumns lists the per-tax difference columns stripped from the
// combined report.
var TaxDiffColumns = []string{
	ColIntegratedTaxDiff,
	ColCentralTaxDiff,
	ColStateTaxDiff,
	ColCessDiff,
}

var tolerance = decimal.NewFromInt(toleranceUnits)

// MatchOutcome is the raw bucket split produced by the two matching phases,
// before residuals are shaped for reporting.
type MatchOutcome struct {
	Matched          []model.Record
	PartiallyMatched []model.Record
	OnlyInBooks      []model.Record
	OnlyInGstr2b     []model.Record
}

// matchKey uppercases GSTIN plus invoice number with every whitespace rune
// removed, so "INV 001" and "INV001" collide on purpose.
func matchKey(rec model.Record, cols Columns) string {
	return stripSpace(rec.Get(cols.GSTIN)) + stripSpace(rec.Get(cols.BillNo))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(s))
}

// Match reconciles the consolidated ledger against the consolidated
// statement in two phases. Phase one is an exact key lookup; every hit is
// consumed so it cannot match twice. Phase two walks the remaining statement
// pool in order for each leftover ledger record and takes the first
// candidate agreeing on GSTIN, legal name (where both carry one) and taxable
// value within the tolerance band. First fit, not best fit: datasets are one
// filing period, so the linear fallback stays cheap. All working state is
// owned by this call and discarded with it.
func Match(books, gstr2b []model.Record, bcols, gcols Columns) MatchOutcome {
	var out MatchOutcome

	pool := make([]model.Record, len(gstr2b))
	copy(pool, gstr2b)
	consumed := make([]bool, len(pool))

	// Exact phase. Last write wins on duplicate keys; consolidation already
	// guarantees uniqueness so this never triggers in practice.
	byKey := make(map[string]int, len(pool))
	for i, rec := range pool {
		byKey[matchKey(rec, gcols)] = i
	}

	unmatched := make([]model.Record, 0, len(books))
	for _, b := range books {
		idx, ok := byKey[matchKey(b, bcols)]
		if !ok {
			unmatched = append(unmatched, b)
			continue
		}
		delete(byKey, matchKey(b, bcols))
		consumed[idx] = true
		out.Matched = append(out.Matched, mergeMatched(b, pool[idx], bcols, gcols, model.StatusMatched))
	}

	// Tolerant phase over the unconsumed pool.
	for _, b := range unmatched {
		hit := -1
		for i, g := range pool {
			if consumed[i] {
				continue
			}
			if fuzzyCandidate(b, g, bcols, gcols) {
				hit = i
				break
			}
		}
		if hit < 0 {
			out.OnlyInBooks = append(out.OnlyInBooks, tagStatus(b, model.StatusOnlyInBooks))
			continue
		}
		consumed[hit] = true
		out.PartiallyMatched = append(out.PartiallyMatched, mergeMatched(b, pool[hit], bcols, gcols, model.StatusPartiallyMatched))
	}

	for i, g := range pool {
		if consumed[i] {
			continue
		}
		out.OnlyInGstr2b = append(out.OnlyInGstr2b, tagStatus(g, model.StatusOnlyInGstr2b))
	}

	return out
}

func fuzzyCandidate(b, g model.Record, bcols, gcols Columns) bool {
	if stripSpace(b.Get(bcols.GSTIN)) != stripSpace(g.Get(gcols.GSTIN)) {
		return false
	}

	bName := b.Get(bcols.LegalName)
	gName := g.Get(gcols.LegalName)
	if bName != "" && gName != "" && !strings.EqualFold(bName, gName) {
		return false
	}

	diff := taxableValue(b, bcols).Sub(taxableValue(g, gcols))
	return diff.Abs().LessThanOrEqual(tolerance)
}

func taxableValue(rec model.Record, cols Columns) decimal.Decimal {
	return ParseAmount(rec.Get(cols.Amounts[FieldTaxableValue]))
}

// mergeMatched combines a ledger record with its statement counterpart:
// ledger fields stay as-is, statement fields come in under the namespace
// prefix, and one difference column per amount field reports ledger minus
// statement.
func mergeMatched(b, g model.Record, bcols, gcols Columns, status model.Status) model.Record {
	out := b.Clone()
	out[ColStatus] = string(status)

	for _, f := range AmountFields {
		bv := ParseAmount(b.Get(bcols.Amounts[f]))
		gv := ParseAmount(g.Get(gcols.Amounts[f]))
		out[diffColumns[f]] = formatDiff(bv.Sub(gv))
	}

	for k, v := range g {
		out[Gstr2bPrefix+k] = v
	}
	return out
}

// formatDiff renders a difference at two decimals, collapsing anything
// inside the tolerance band to "0.00".
func formatDiff(d decimal.Decimal) string {
	if d.Abs().LessThanOrEqual(tolerance) {
		return "0.00"
	}
	return d.StringFixed(2)
}

func tagStatus(rec model.Record, status model.Status) model.Record {
	out := rec.Clone()
	out[ColStatus] = string(status)
	return out
}
