package reconcile

// Source system names as they appear in reports and summaries.
const (
	SystemAlma      = "Alma"
	SystemFilemaker = "Filemaker"
	SystemGoogle    = "Google Sheet"
)

// Named result tables produced by a reconciliation run. The three compound
// buckets are listed in precedence order: when a compound value qualifies
// for more than one, the earliest wins.
const (
	TableAllThreeSources    = "all_three_sources"
	TableAlmaAndFilemaker   = "alma_and_filemaker"
	TableAlmaAndGoogle      = "alma_and_google"
	TableFilemakerAndGoogle = "filemaker_and_google"
	TableAlmaOnly           = "alma_only"
	TableFilemakerOnly      = "filemaker_only"
	TableGoogleOnly         = "google_only"
	TableEachToOne          = "each_to_one_fm_or_alma"
	TableAtLeastOneToMult   = "at_least_one_to_mult_fm_or_alma"
	TableLeftovers          = "leftovers"
)

// Classification tags assigned to each row.
const (
	ClassPerfectMatchAll  = "perfect_match_all_sources"
	ClassPerfectMatchPair = "perfect_match_pair"
	ClassSingleSource     = "single_source"
	ClassEachToOne        = TableEachToOne
	ClassAtLeastOneToMult = TableAtLeastOneToMult
	ClassLeftovers        = TableLeftovers
)

// SourceRecord is one row from a source after boundary mapping: the
// source-specific record key (holdings id, FileMaker record id, spreadsheet
// row number) plus the raw identifier field, which may be empty or compound.
type SourceRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Stats holds the per-source frequency counts.
type Stats struct {
	// System is the source system name (e.g. "Alma").
	System string `json:"system"`

	// Records is the number of source records loaded.
	Records int `json:"records"`

	// Total is the number of identifier occurrences, duplicates included.
	Total int `json:"total"`

	// Distinct is the number of distinct identifiers.
	Distinct int `json:"distinct"`

	// Singletons counts identifiers referenced by exactly one record.
	Singletons int `json:"singletons"`

	// Repeats counts identifiers referenced by more than one record.
	// Distinct = Singletons + Repeats always holds.
	Repeats int `json:"repeats"`

	// EmptyRecords counts records whose raw field held no identifier.
	EmptyRecords int `json:"empty_records"`
}

// Row is one entry in a result table: an identifier (or compound value),
// its classification, and the referencing record keys per source.
type Row struct {
	// Value is the identifier or normalized compound value.
	Value string `json:"value"`

	// Classification tags the cross-source relationship of Value.
	Classification string `json:"classification"`

	// AlmaKeys lists the Alma holdings ids referencing Value.
	AlmaKeys []string `json:"alma_keys,omitempty"`

	// FilemakerKeys lists the FileMaker record ids referencing Value.
	FilemakerKeys []string `json:"filemaker_keys,omitempty"`

	// GoogleKeys lists the spreadsheet row numbers referencing Value.
	GoogleKeys []string `json:"google_keys,omitempty"`
}

// Table is an ordered, named sequence of result rows.
type Table struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// Summary holds the scalar counts for a reconciliation run, suitable for
// log output and run history.
type Summary struct {
	// Per-source frequency counts.
	Alma      Stats `json:"alma"`
	Filemaker Stats `json:"filemaker"`
	Google    Stats `json:"google"`

	// Perfect match counts: identifiers that are singletons in every
	// source being compared.
	AllThreeSources    int `json:"all_three_sources"`
	AlmaAndFilemaker   int `json:"alma_and_filemaker"`
	AlmaAndGoogle      int `json:"alma_and_google"`
	FilemakerAndGoogle int `json:"filemaker_and_google"`

	// Identifiers found in exactly one source.
	AlmaOnly      int `json:"alma_only"`
	FilemakerOnly int `json:"filemaker_only"`
	GoogleOnly    int `json:"google_only"`

	// Compound value bucket counts, after de-duplication.
	EachToOne        int `json:"each_to_one_fm_or_alma"`
	AtLeastOneToMult int `json:"at_least_one_to_mult_fm_or_alma"`
	Leftovers        int `json:"leftovers"`
}

// Report is the complete output of a reconciliation run. It is built once
// and never mutated afterward.
type Report struct {
	Tables  []Table `json:"tables"`
	Summary Summary `json:"summary"`
}

// Table returns the named result table, or nil if the report has none.
func (r *Report) Table(name string) *Table {
	for i := range r.Tables {
		if r.Tables[i].Name == name {
			return &r.Tables[i]
		}
	}
	return nil
}
