package checks

import (
	"github.com/UCLALibrary/ftva-mams-data/core/invnum"
	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
)

// Finding points at one problematic record in a source.
type Finding struct {
	// Key is the source record key (holdings id, record id, row number).
	Key string `json:"key"`
	// Value is the offending identifier or raw field value.
	Value string `json:"value"`
}

// Duplicate is an identifier referenced by more than one record.
type Duplicate struct {
	Value string   `json:"value"`
	Keys  []string `json:"keys"`
}

// Blank returns the records whose identifier field is empty after
// normalization.
func Blank(records []reconcile.SourceRecord) []Finding {
	var findings []Finding
	for _, r := range records {
		if invnum.Normalize(r.Value) == "" {
			findings = append(findings, Finding{Key: r.Key, Value: r.Value})
		}
	}
	return findings
}

// Invalid returns identifiers that do not look like FTVA inventory
// numbers. Compound values are checked atom by atom.
func Invalid(records []reconcile.SourceRecord) []Finding {
	var findings []Finding
	for _, r := range records {
		for _, id := range invnum.Split(r.Value) {
			if !invnum.Matches(id) {
				findings = append(findings, Finding{Key: r.Key, Value: id})
			}
		}
	}
	return findings
}

// Compounds returns records holding more than one identifier. Compound
// cells are expected in the tracking sheet but not in Alma or FileMaker.
func Compounds(records []reconcile.SourceRecord) []Finding {
	var findings []Finding
	for _, r := range records {
		if invnum.IsCompound(r.Value) {
			findings = append(findings, Finding{Key: r.Key, Value: invnum.Normalize(r.Value)})
		}
	}
	return findings
}

// VariantCollisions returns identifiers that also appear in the same
// source under a call-number suffix variant ("DVD431" next to "DVD431M").
// Such pairs are usually the same item recorded with and without a format
// suffix, and they will not match each other across systems.
func VariantCollisions(data *reconcile.SourceData) []Duplicate {
	var collisions []Duplicate
	for _, id := range data.Identifiers() {
		for _, variant := range invnum.Variants(id) {
			if variant == id || !data.Has(variant) {
				continue
			}
			keys := append(append([]string{}, data.Keys(id)...), data.Keys(variant)...)
			collisions = append(collisions, Duplicate{Value: id, Keys: keys})
			break
		}
	}
	return collisions
}

// Duplicates returns identifiers referenced by more than one record in
// the indexed source, with the referencing keys.
func Duplicates(data *reconcile.SourceData) []Duplicate {
	var duplicates []Duplicate
	for _, id := range data.Identifiers() {
		if data.Count(id) > 1 {
			duplicates = append(duplicates, Duplicate{Value: id, Keys: data.Keys(id)})
		}
	}
	return duplicates
}
