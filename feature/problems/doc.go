// Package problems provides data quality checks on the reconciliation sources.
//
// Unlike the 'matches' package which reconciles the sources against each
// other, this package validates each source on its own: inventory numbers
// that are blank, fail the FTVA pattern, appear as unexpected compound
// cells, or are referenced by more than one record. It also verifies the
// Digital Labs table schema before a run reads it.
//
// # Checks Provided
//
//   - Alma: blank, invalid, compound and duplicate call numbers.
//   - Filemaker: blank, invalid, compound and duplicate inventory numbers.
//   - Google: blank, invalid and duplicate numbers (compound cells are expected there).
//   - Schema: required columns on the Digital Labs sheet table.
//
// # HTTP Endpoints
//
//   - GET /problems : Runs all checks.
//   - GET /problems/alma : Checks the Alma export.
//   - GET /problems/filemaker : Checks the FileMaker export.
//   - GET /problems/google : Checks the tracking sheet.
//   - GET /problems/schema : Checks the Digital Labs table schema.
package problems
