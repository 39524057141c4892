package sources

import (
	"errors"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
)

// ErrMalformedInput indicates a source export is structurally unusable:
// a required column or field is missing entirely. This is fatal for the
// run; empty identifier values on individual rows are not errors and are
// counted by the reconciliation engine instead.
var ErrMalformedInput = errors.New("malformed source input")

// Record key labels used in report output.
const (
	AlmaKeyLabel      = "Holdings IDs"
	FilemakerKeyLabel = "Record IDs"
	GoogleKeyLabel    = "Row Numbers"
)

// Config holds the locations of the three source exports inside the
// storage bucket, plus the table name for the Digital Labs database.
type Config struct {
	// AlmaObject is the object name of the Alma holdings CSV export.
	AlmaObject string `mapstructure:"alma_object" default:"exports/ftva_holdings.csv"`
	// FilemakerObject is the object name of the FileMaker JSON export.
	FilemakerObject string `mapstructure:"filemaker_object" default:"exports/filemaker_data.json"`
	// GoogleObject is the object name of the tracking sheet TSV export.
	GoogleObject string `mapstructure:"google_object" default:"exports/google_sheet.tsv"`
	// DigitalTable is the Digital Labs database table holding sheet rows.
	// When a database connection is available it replaces the TSV export.
	DigitalTable string `mapstructure:"digital_table" default:"digital_data"`
}

// NewAlmaData indexes Alma records for reconciliation.
func NewAlmaData(records []reconcile.SourceRecord) *reconcile.SourceData {
	return reconcile.NewSourceData(reconcile.SystemAlma, AlmaKeyLabel, records)
}

// NewFilemakerData indexes FileMaker records for reconciliation.
func NewFilemakerData(records []reconcile.SourceRecord) *reconcile.SourceData {
	return reconcile.NewSourceData(reconcile.SystemFilemaker, FilemakerKeyLabel, records)
}

// NewGoogleData indexes tracking sheet records for reconciliation.
func NewGoogleData(records []reconcile.SourceRecord) *reconcile.SourceData {
	return reconcile.NewSourceData(reconcile.SystemGoogle, GoogleKeyLabel, records)
}
