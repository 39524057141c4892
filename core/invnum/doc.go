// Package invnum handles FTVA inventory number parsing and normalization.
//
// Inventory numbers identify physical archival items (film reels, tapes,
// discs), e.g. "M123" or "DVD431". The three reconciled data sources record
// them inconsistently: Alma call numbers contain spaces, FileMaker exports
// contain stray non-breaking spaces, and spreadsheet cells may hold several
// numbers joined by a pipe. Every identifier entering the reconciliation
// engine passes through this package first, so cross-source comparison is
// done on a single canonical form.
//
// # Operations
//
//   - Normalize: canonical form of one identifier (NFKC, space-free, upper case).
//   - Split / Join: compound pipe-delimited field handling.
//   - Extract: pull inventory numbers out of free text such as legacy file paths.
//   - Variants: Alma call-number suffix variants for index building.
//
// # Usage
//
//	ids := invnum.Split("m123 | DVD 431")
//	// ids == []string{"M123", "DVD431"}
package invnum
