package recon_test

import (
	"testing"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
	"github.com/pdstack5770/GSTR-2B-RECO/internal/recon"
)

var testHeaders = []string{"GSTIN", "Invoice Number", "Legal Name", "Taxable Value"}

func dataset(records ...model.Record) *recon.Dataset {
	return &recon.Dataset{
		Headers: testHeaders,
		Records: records,
		Columns: testColumns(),
	}
}

func TestAssemble_SplitsBooksResidualBySign(t *testing.T) {
	books := dataset(
		invoice("27AAAAA0000A1Z5", "INV001", "Acme", "500"),
		invoice("27AAAAA0000A1Z5", "CN001", "Acme", "-500"),
	)
	gstr2b := dataset()

	outcome := recon.Match(books.Records, gstr2b.Records, books.Columns, gstr2b.Columns)
	res := recon.Assemble(outcome, model.ReportTypeOther, books, gstr2b)

	if len(res.InvoicesInBookNotInGstr2b) != 1 {
		t.Fatalf("invoices=%d, want 1", len(res.InvoicesInBookNotInGstr2b))
	}
	if len(res.CreditNotesInBookNotInGstr2b) != 1 {
		t.Fatalf("credit notes=%d, want 1", len(res.CreditNotesInBookNotInGstr2b))
	}
	if got := res.CreditNotesInBookNotInGstr2b[0]["Invoice Number"]; got != "CN001" {
		t.Fatalf("credit note record=%v", res.CreditNotesInBookNotInGstr2b[0])
	}
}

func TestAssemble_B2BResidualIsAllInvoices(t *testing.T) {
	books := dataset()
	gstr2b := dataset(
		invoice("27AAAAA0000A1Z5", "INV001", "Acme", "500"),
		invoice("27AAAAA0000A1Z5", "CN001", "Acme", "-500"),
	)

	outcome := recon.MatchOutcome{
		OnlyInGstr2b: []model.Record{gstr2b.Records[0], gstr2b.Records[1]},
	}
	res := recon.Assemble(outcome, model.ReportTypeB2B, books, gstr2b)

	if len(res.InvoicesInGstr2bNotInBook) != 2 {
		t.Fatalf("invoices=%d, want whole residual", len(res.InvoicesInGstr2bNotInBook))
	}
	if len(res.CreditNotesInGstr2bNotInBook) != 0 {
		t.Fatalf("credit notes=%d, want 0 for B2B", len(res.CreditNotesInGstr2bNotInBook))
	}
}

func TestAssemble_CDNRResidualIsAllCreditNotes(t *testing.T) {
	books := dataset()
	gstr2b := dataset(
		invoice("27AAAAA0000A1Z5", "CN001", "Acme", "500"),
	)

	outcome := recon.MatchOutcome{OnlyInGstr2b: gstr2b.Records}
	res := recon.Assemble(outcome, model.ReportTypeCDNR, books, gstr2b)

	if len(res.CreditNotesInGstr2bNotInBook) != 1 {
		t.Fatalf("credit notes=%d, want whole residual", len(res.CreditNotesInGstr2bNotInBook))
	}
	if len(res.InvoicesInGstr2bNotInBook) != 0 {
		t.Fatalf("invoices=%d, want 0 for CDNR", len(res.InvoicesInGstr2bNotInBook))
	}
}

func TestAssemble_SummaryUsesPreConsolidationCounts(t *testing.T) {
	// The keyless line item counts toward the raw total but never reaches a
	// status bucket; the totals are raw volume, deliberately.
	books := dataset(
		invoice("27AAAAA0000A1Z5", "INV001", "Acme", "500"),
		invoice("", "INV-NO-GSTIN", "Stray", "100"),
	)
	gstr2b := dataset(
		invoice("27AAAAA0000A1Z5", "INV001", "Acme", "500"),
	)

	outcome := recon.Match(
		recon.Consolidate(books.Records, books.Columns),
		recon.Consolidate(gstr2b.Records, gstr2b.Columns),
		books.Columns, gstr2b.Columns,
	)
	res := recon.Assemble(outcome, model.ReportTypeOther, books, gstr2b)

	if res.Summary.TotalInBooks != 2 {
		t.Fatalf("TotalInBooks=%d, want 2 raw rows", res.Summary.TotalInBooks)
	}
	buckets := res.Summary.Matched + res.Summary.PartiallyMatched + res.Summary.OnlyInBooks
	if buckets != 1 {
		t.Fatalf("bucket sum=%d, want 1 (keyless row dropped before matching)", buckets)
	}
}

func TestAssemble_ReportStripsPerTaxDiffs(t *testing.T) {
	books := dataset(invoice("27AAAAA0000A1Z5", "INV001", "Acme", "1000"))
	gstr2b := dataset(invoice("27AAAAA0000A1Z5", "INV001", "Acme", "1000"))

	outcome := recon.Match(books.Records, gstr2b.Records, books.Columns, gstr2b.Columns)
	res := recon.Assemble(outcome, model.ReportTypeOther, books, gstr2b)

	if len(res.Report) != 1 {
		t.Fatalf("report=%d, want 1", len(res.Report))
	}
	rec := res.Report[0]
	if _, ok := rec[recon.ColTaxableValueDiff]; !ok {
		t.Fatalf("taxable diff missing from report record: %v", rec)
	}
	for _, col := range recon.TaxDiffColumns {
		if _, ok := rec[col]; ok {
			t.Fatalf("%q should be stripped from the report", col)
		}
	}
	// The category set keeps the detail.
	if _, ok := res.Matched[0][recon.ColIntegratedTaxDiff]; !ok {
		t.Fatalf("category record lost its per-tax diffs: %v", res.Matched[0])
	}
}

func TestAssemble_ReportOrder(t *testing.T) {
	books := dataset(
		invoice("27AAAAA0000A1Z5", "INV001", "Acme", "1000"),
		invoice("27BBBBB0000B1Z4", "INV-002", "Beta", "500"),
		invoice("27CCCCC0000C1Z3", "INV003", "Gamma", "750"),
	)
	gstr2b := dataset(
		invoice("27AAAAA0000A1Z5", "INV001", "Acme", "1000"),
		invoice("27BBBBB0000B1Z4", "INV002", "Beta", "500"),
		invoice("27DDDDD0000D1Z2", "INV004", "Delta", "900"),
	)

	outcome := recon.Match(books.Records, gstr2b.Records, books.Columns, gstr2b.Columns)
	res := recon.Assemble(outcome, model.ReportTypeOther, books, gstr2b)

	want := []string{
		string(model.StatusMatched),
		string(model.StatusPartiallyMatched),
		string(model.StatusOnlyInBooks),
		string(model.StatusOnlyInGstr2b),
	}
	if len(res.Report) != len(want) {
		t.Fatalf("report=%d, want %d", len(res.Report), len(want))
	}
	for i, status := range want {
		if got := res.Report[i][recon.ColStatus]; got != status {
			t.Fatalf("report[%d] status=%q, want %q", i, got, status)
		}
	}
}

func TestReconcile_EndToEnd(t *testing.T) {
	booksRows := [][]string{
		{"Purchase Register"},
		{},
		{"GSTIN", "Invoice Number", "Legal Name", "Taxable Value"},
		{"27AAAAA0000A1Z5", "INV001", "Acme", "600"},
		{"27AAAAA0000A1Z5", "INV001", "Acme", "400"},
		{"27BBBBB0000B1Z4", "INV-002", "Beta", "500"},
	}
	gstr2bRows := [][]string{
		{"GSTIN of supplier", "Invoice number", "Trade/Legal name", "Taxable Value (₹)"},
		{"27AAAAA0000A1Z5", "INV001", "Acme", "1000"},
		{"27BBBBB0000B1Z4", "INV002", "Beta", "501"},
	}

	res, err := recon.Reconcile(booksRows, gstr2bRows, model.ReportTypeB2B, recon.DefaultAliases())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if res.Summary.TotalInBooks != 3 || res.Summary.TotalInGstr2b != 2 {
		t.Fatalf("summary totals=%+v", res.Summary)
	}
	if res.Summary.Matched != 1 {
		t.Fatalf("matched=%d, want 1 (consolidated 600+400 vs 1000)", res.Summary.Matched)
	}
	if res.Summary.PartiallyMatched != 1 {
		t.Fatalf("partiallyMatched=%d, want 1 (INV-002 vs INV002, diff 1)", res.Summary.PartiallyMatched)
	}
	if got := res.Matched[0][recon.ColTaxableValueDiff]; got != "0.00" {
		t.Fatalf("taxable diff=%q, want 0.00", got)
	}
}

func TestReconcile_FailsWhenEitherSourceIsBad(t *testing.T) {
	good := [][]string{
		{"GSTIN", "Invoice Number", "Taxable Value"},
		{"27AAAAA0000A1Z5", "INV001", "1000"},
	}

	if _, err := recon.Reconcile(nil, good, model.ReportTypeOther, recon.DefaultAliases()); err == nil {
		t.Fatalf("want error for empty books source")
	}
	if _, err := recon.Reconcile(good, [][]string{{"no", "headers"}}, model.ReportTypeOther, recon.DefaultAliases()); err == nil {
		t.Fatalf("want error for gstr-2b without a header row")
	}
}
