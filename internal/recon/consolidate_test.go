package recon_test

import (
	"testing"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
	"github.com/pdstack5770/GSTR-2B-RECO/internal/recon"
)

func testColumns() recon.Columns {
	return recon.Columns{
		GSTIN:     "GSTIN",
		BillNo:    "Invoice Number",
		LegalName: "Legal Name",
		Amounts: map[recon.Field]string{
			recon.FieldTaxableValue:  "Taxable Value",
			recon.FieldIntegratedTax: "Integrated Tax",
			recon.FieldCentralTax:    "Central Tax",
			recon.FieldStateTax:      "State/UT Tax",
			recon.FieldCess:          "Cess",
		},
	}
}

func line(gstin, inv, name, taxable string) model.Record {
	return model.Record{
		"GSTIN":          gstin,
		"Invoice Number": inv,
		"Legal Name":     name,
		"Taxable Value":  taxable,
	}
}

func TestConsolidate_SumsLineItemsOfOneInvoice(t *testing.T) {
	records := []model.Record{
		line("27AAAAA0000A1Z5", "INV001", "Acme", "600"),
		line("27AAAAA0000A1Z5", "INV001", "Acme", "400"),
	}

	out := recon.Consolidate(records, testColumns())
	if len(out) != 1 {
		t.Fatalf("consolidated=%d, want 1", len(out))
	}
	if got := out[0]["Taxable Value"]; got != "1000" {
		t.Fatalf("Taxable Value=%q, want 1000", got)
	}
}

func TestConsolidate_KeysAreUnique(t *testing.T) {
	records := []model.Record{
		line("27AAAAA0000A1Z5", "INV001", "Acme", "100"),
		line("27aaaaa0000a1z5", " inv001 ", "Acme", "100"),
		line("27BBBBB0000B1Z4", "INV001", "Beta", "50"),
	}

	out := recon.Consolidate(records, testColumns())
	if len(out) != 2 {
		t.Fatalf("consolidated=%d, want 2 (case/trim variants share a key)", len(out))
	}
	if got := out[0]["Taxable Value"]; got != "200" {
		t.Fatalf("Taxable Value=%q, want 200", got)
	}
}

func TestConsolidate_SkipsRecordsMissingKeyParts(t *testing.T) {
	records := []model.Record{
		line("", "INV001", "Acme", "100"),
		line("27AAAAA0000A1Z5", "", "Acme", "100"),
		line("27AAAAA0000A1Z5", "INV002", "Acme", "100"),
	}

	out := recon.Consolidate(records, testColumns())
	if len(out) != 1 {
		t.Fatalf("consolidated=%d, want 1 (keyless line items dropped)", len(out))
	}
	if got := out[0]["Invoice Number"]; got != "INV002" {
		t.Fatalf("kept record=%v", out[0])
	}
}

func TestConsolidate_BackfillsLegalName(t *testing.T) {
	records := []model.Record{
		line("27AAAAA0000A1Z5", "INV001", "", "600"),
		line("27AAAAA0000A1Z5", "INV001", "Acme Traders", "400"),
	}

	out := recon.Consolidate(records, testColumns())
	if got := out[0]["Legal Name"]; got != "Acme Traders" {
		t.Fatalf("Legal Name=%q, want backfilled from later line item", got)
	}
}

func TestConsolidate_StripsThousandSeparators(t *testing.T) {
	records := []model.Record{
		line("27AAAAA0000A1Z5", "INV001", "Acme", "1,000.25"),
		line("27AAAAA0000A1Z5", "INV001", "Acme", "2,499.75"),
	}

	out := recon.Consolidate(records, testColumns())
	if got := out[0]["Taxable Value"]; got != "3500" {
		t.Fatalf("Taxable Value=%q, want 3500", got)
	}
}

func TestConsolidate_PreservesTwoDecimalPrecision(t *testing.T) {
	records := []model.Record{
		line("27AAAAA0000A1Z5", "INV001", "Acme", "0.10"),
		line("27AAAAA0000A1Z5", "INV001", "Acme", "0.20"),
	}

	out := recon.Consolidate(records, testColumns())
	if got := out[0]["Taxable Value"]; got != "0.3" {
		t.Fatalf("Taxable Value=%q, want exact 0.3", got)
	}
}

func TestConsolidate_TotalsAreOrderIndependent(t *testing.T) {
	forward := []model.Record{
		line("27AAAAA0000A1Z5", "INV001", "Acme", "10.01"),
		line("27AAAAA0000A1Z5", "INV001", "Acme", "20.02"),
		line("27AAAAA0000A1Z5", "INV001", "Acme", "30.03"),
	}
	reversed := []model.Record{forward[2], forward[1], forward[0]}

	a := recon.Consolidate(forward, testColumns())
	b := recon.Consolidate(reversed, testColumns())
	if a[0]["Taxable Value"] != b[0]["Taxable Value"] {
		t.Fatalf("order changed the total: %q vs %q", a[0]["Taxable Value"], b[0]["Taxable Value"])
	}
}

func TestConsolidate_FirstAppearanceOrder(t *testing.T) {
	records := []model.Record{
		line("27BBBBB0000B1Z4", "INV009", "Beta", "1"),
		line("27AAAAA0000A1Z5", "INV001", "Acme", "1"),
		line("27BBBBB0000B1Z4", "INV009", "Beta", "1"),
	}

	out := recon.Consolidate(records, testColumns())
	if len(out) != 2 || out[0]["Legal Name"] != "Beta" || out[1]["Legal Name"] != "Acme" {
		t.Fatalf("output order=%v", out)
	}
}
