// Package report renders reconciliation output.
//
// Result tables are written as CSV files, one per table, either to a local
// directory (WriteDirectory) or to the storage bucket (Publish). Summary
// counts are rendered as console tables for quick comparison of the three
// sources after a run.
package report
