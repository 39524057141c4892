// Package sources maps the three FTVA source exports into the fixed record
// shape the reconciliation engine consumes.
//
// Each loader reads one export format and produces reconcile.SourceRecord
// values (record key + raw identifier field), isolating the engine from
// source-specific schema variation:
//
//   - LoadAlma: Alma holdings CSV report (Holding Id, Permanent Call Number),
//     tolerant of the UTF-8 BOM that Windows-exported reports carry.
//   - LoadFilemaker: FileMaker JSON export (recordId, inventory_no).
//   - LoadGoogle: tracking sheet TSV export, keyed by spreadsheet row number,
//     with possibly compound pipe-delimited cells.
//   - LoadDigital: the Digital Labs MySQL table that superseded the sheet.
//
// The *Object variants fetch the export from the storage bucket first.
// Structural problems (a missing column or field) fail the whole load with
// an error wrapping ErrMalformedInput; empty identifier values on
// individual rows are passed through for the engine to count.
package sources
