package domain

import "errors"

// Sentinel errors shared by every computation stage. Callers discriminate
// with errors.Is; the wrapped message names the offending argument.
var (
	// ErrInvalidInput flags non-numeric values, negative amounts where an
	// amount must be non-negative, mismatched column lengths, unrecognized
	// period or employer-class tokens, and overpayments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTransactionType flags a lookup against the withholding-tax
	// rate table with a category that has no entry.
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)
