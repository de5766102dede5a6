package recon

// Field names one of the canonical semantic columns a sheet can carry.
type Field string

const (
	FieldGSTIN         Field = "gstin"
	FieldBillNo        Field = "billNo"
	FieldLegalName     Field = "legalName"
	FieldTaxableValue  Field = "taxableValue"
	FieldIntegratedTax Field = "integratedTax"
	FieldCentralTax    Field = "centralTax"
	FieldStateTax      Field = "stateTax"
	FieldCess          Field = "cess"
)

// AmountFields lists the numeric canonical fields in output order.
var AmountFields = []Field{
	FieldTaxableValue,
	FieldIntegratedTax,
	FieldCentralTax,
	FieldStateTax,
	FieldCess,
}

// AliasConfig maps each canonical field to its literal header aliases in
// priority order. It is passed explicitly into resolution so synthetic header
// sets can be tested and future localization does not touch the resolver.
type AliasConfig map[Field][]string

// DefaultAliases returns the alias table covering the header vocabulary seen
// across GSTR-2B exports, accounting packages and hand-kept purchase ledgers.
// Earlier aliases win when a sheet carries more than one candidate header.
func DefaultAliases() AliasConfig {
	return AliasConfig{
		FieldGSTIN: {
			"GSTIN of supplier",
			"GSTIN/UIN of Supplier",
			"Supplier GSTIN",
			"GSTIN",
			"GSTIN No",
			"GSTIN No.",
			"Party GSTIN",
		},
		FieldBillNo: {
			"Invoice number",
			"Invoice Number",
			"Invoice No",
			"Invoice No.",
			"Note number",
			"Note No",
			"Note No.",
			"Bill No",
			"Bill No.",
			"Bill Number",
			"Voucher No",
			"Doc No",
		},
		FieldLegalName: {
			"Trade/Legal name",
			"Trade/Legal name of the Supplier",
			"Legal Name",
			"Legal Name of Supplier",
			"Supplier Name",
			"Party Name",
			"Name of Supplier",
		},
		FieldTaxableValue: {
			"Taxable Value (₹)",
			"Taxable Value",
			"Taxable Value(₹)",
			"Taxable Amount",
			"Total Taxable Value",
		},
		FieldIntegratedTax: {
			"Integrated Tax(₹)",
			"Integrated Tax (₹)",
			"Integrated Tax",
			"IGST",
			"IGST Amount",
			"Integrated Tax Amount",
		},
		FieldCentralTax: {
			"Central Tax(₹)",
			"Central Tax (₹)",
			"Central Tax",
			"CGST",
			"CGST Amount",
			"Central Tax Amount",
		},
		FieldStateTax: {
			"State/UT Tax(₹)",
			"State/UT Tax (₹)",
			"State/UT Tax",
			"State Tax",
			"SGST",
			"SGST Amount",
			"State Tax Amount",
		},
		FieldCess: {
			"Cess(₹)",
			"Cess (₹)",
			"Cess",
			"Cess Amount",
		},
	}
}
