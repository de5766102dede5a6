package recon

import (
	"fmt"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
)

// Reconcile is the whole pipeline as one pure function: two raw sheets in,
// one immutable Result out. Nothing is cached or shared across calls.
func Reconcile(booksRows, gstr2bRows [][]string, reportType model.ReportType, cfg AliasConfig) (*model.Result, error) {
	books, err := BuildDataset(booksRows, cfg)
	if err != nil {
		return nil, fmt.Errorf("books: %w", err)
	}
	gstr2b, err := BuildDataset(gstr2bRows, cfg)
	if err != nil {
		return nil, fmt.Errorf("gstr-2b: %w", err)
	}

	outcome := Match(
		Consolidate(books.Records, books.Columns),
		Consolidate(gstr2b.Records, gstr2b.Columns),
		books.Columns,
		gstr2b.Columns,
	)

	return Assemble(outcome, reportType, books, gstr2b), nil
}

// Assemble shapes the match outcome into the final Result: residuals split
// into invoice and credit-note buckets, summary counts, and the combined
// report sheet.
func Assemble(outcome MatchOutcome, reportType model.ReportType, books, gstr2b *Dataset) *model.Result {
	res := &model.Result{
		Matched:          outcome.Matched,
		PartiallyMatched: outcome.PartiallyMatched,
		BooksHeaders:     books.Headers,
		Gstr2bHeaders:    gstr2b.Headers,
	}

	// Ledger residual always splits by sign of the taxable value.
	for _, rec := range outcome.OnlyInBooks {
		if taxableValue(rec, books.Columns).IsNegative() {
			res.CreditNotesInBookNotInGstr2b = append(res.CreditNotesInBookNotInGstr2b, rec)
		} else {
			res.InvoicesInBookNotInGstr2b = append(res.InvoicesInBookNotInGstr2b, rec)
		}
	}

	// Statement residual: a declared B2B sheet holds only invoices and a
	// declared CDNR sheet only credit notes, so the split is by sign only
	// for the generic type.
	switch reportType {
	case model.ReportTypeB2B:
		res.InvoicesInGstr2bNotInBook = outcome.OnlyInGstr2b
	case model.ReportTypeCDNR:
		res.CreditNotesInGstr2bNotInBook = outcome.OnlyInGstr2b
	default:
		for _, rec := range outcome.OnlyInGstr2b {
			if taxableValue(rec, gstr2b.Columns).IsNegative() {
				res.CreditNotesInGstr2bNotInBook = append(res.CreditNotesInGstr2bNotInBook, rec)
			} else {
				res.InvoicesInGstr2bNotInBook = append(res.InvoicesInGstr2bNotInBook, rec)
			}
		}
	}

	res.Summary = model.Summary{
		TotalInBooks:     len(books.Records),
		TotalInGstr2b:    len(gstr2b.Records),
		Matched:          len(outcome.Matched),
		PartiallyMatched: len(outcome.PartiallyMatched),
		OnlyInBooks:      len(outcome.OnlyInBooks),
		OnlyInGstr2b:     len(outcome.OnlyInGstr2b),
	}

	res.Report = buildReport(outcome)
	return res
}

// buildReport concatenates all buckets in presentation order and strips the
// per-tax difference columns; the taxable difference stays. The detailed
// columns remain available on the category sets, so nothing is lost.
func buildReport(outcome MatchOutcome) []model.Record {
	size := len(outcome.Matched) + len(outcome.PartiallyMatched) +
		len(outcome.OnlyInBooks) + len(outcome.OnlyInGstr2b)

	report := make([]model.Record, 0, size)
	for _, bucket := range [][]model.Record{
		outcome.Matched,
		outcome.PartiallyMatched,
		outcome.OnlyInBooks,
		outcome.OnlyInGstr2b,
	} {
		for _, rec := range bucket {
			slim := rec.Clone()
			for _, col := range TaxDiffColumns {
				delete(slim, col)
			}
			report = append(report, slim)
		}
	}
	return report
}
