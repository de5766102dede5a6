package recon

import "errors"

// Every error here is terminal for the attempt: the caller shows the message
// and lets the user retry with corrected input. Nothing is retried internally
// and no partial result is ever produced.
var (
	// ErrEmptySheet means the parsed sheet carried zero rows.
	ErrEmptySheet = errors.New("sheet has no rows")

	// ErrHeaderNotFound means no row inside the scan window carried both a
	// GSTIN-like and an invoice-number-like header.
	ErrHeaderNotFound = errors.New("header row not found")

	// ErrEmptyDataset means a header row was found but nothing below it
	// survived blank-row filtering.
	ErrEmptyDataset = errors.New("no data rows below header")

	// ErrMissingRequiredColumn means the GSTIN or invoice-number column could
	// not be resolved, without which matching cannot proceed.
	ErrMissingRequiredColumn = errors.New("required column missing")
)
