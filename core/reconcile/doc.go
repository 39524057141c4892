// Package reconcile computes cross-source inventory number matches for the
// three FTVA data sources: Alma holdings, the FileMaker labeling database,
// and the Digital Labs tracking spreadsheet (formerly Google Sheets).
//
// The engine is a single-threaded, in-memory batch computation. Loaders map
// each source into SourceRecord values (record key + raw identifier field);
// NewSourceData normalizes and indexes them once, and Reconcile derives the
// full match report from the three read-only indexes. All lookups are map
// based, so a run over the production data (hundreds of thousands of Alma
// rows, tens of thousands of FileMaker and spreadsheet rows) stays
// near-linear in total identifier count.
//
// # Result tables
//
// A report contains, in order:
//
//   - all_three_sources: identifiers singleton in every source
//   - alma_and_filemaker, alma_and_google, filemaker_and_google:
//     pairwise singleton matches, ignoring the third source
//   - alma_only, filemaker_only, google_only: identifiers found in exactly
//     one source, with that source's referencing record keys
//   - each_to_one_fm_or_alma, at_least_one_to_mult_fm_or_alma, leftovers:
//     spreadsheet compound values classified by how their atomic
//     identifiers resolve against Alma and FileMaker
//
// Compound bucket membership is de-duplicated after classification so each
// compound value lands in exactly one bucket; earlier buckets win.
//
// # Usage
//
//	alma := reconcile.NewSourceData(reconcile.SystemAlma, "Holdings IDs", almaRecords)
//	fm := reconcile.NewSourceData(reconcile.SystemFilemaker, "Record IDs", fmRecords)
//	google := reconcile.NewSourceData(reconcile.SystemGoogle, "Row Numbers", sheetRecords)
//
//	report, err := reconcile.Reconcile(alma, fm, google)
package reconcile
