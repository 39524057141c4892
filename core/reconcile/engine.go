package reconcile

import (
	"errors"
	"sort"
	"strings"

	"github.com/UCLALibrary/ftva-mams-data/core/invnum"
)

// ErrMissingSource is returned when Reconcile is called without all three
// source indexes. A source with zero records is legal; a nil source is not.
var ErrMissingSource = errors.New("reconcile: all three sources are required")

// Reconcile computes the full cross-source match report for the three
// identifier indexes. The indexes are not modified; the returned report is
// complete and never mutated afterward.
func Reconcile(alma, filemaker, google *SourceData) (*Report, error) {
	if alma == nil || filemaker == nil || google == nil {
		return nil, ErrMissingSource
	}

	report := &Report{
		Summary: Summary{
			Alma:      alma.Stats(),
			Filemaker: filemaker.Stats(),
			Google:    google.Stats(),
		},
	}

	tables := []Table{
		{Name: TableAllThreeSources, Rows: perfectMatchesAll(alma, filemaker, google)},
		{Name: TableAlmaAndFilemaker, Rows: perfectMatchesPair(alma, filemaker)},
		{Name: TableAlmaAndGoogle, Rows: perfectMatchesPair(alma, google)},
		{Name: TableFilemakerAndGoogle, Rows: perfectMatchesPair(filemaker, google)},
		{Name: TableAlmaOnly, Rows: singleSource(alma, filemaker, google)},
		{Name: TableFilemakerOnly, Rows: singleSource(filemaker, alma, google)},
		{Name: TableGoogleOnly, Rows: singleSource(google, alma, filemaker)},
	}
	tables = append(tables, dedupeBuckets(classifyCompounds(alma, filemaker, google))...)
	report.Tables = tables

	s := &report.Summary
	s.AllThreeSources = len(report.Table(TableAllThreeSources).Rows)
	s.AlmaAndFilemaker = len(report.Table(TableAlmaAndFilemaker).Rows)
	s.AlmaAndGoogle = len(report.Table(TableAlmaAndGoogle).Rows)
	s.FilemakerAndGoogle = len(report.Table(TableFilemakerAndGoogle).Rows)
	s.AlmaOnly = len(report.Table(TableAlmaOnly).Rows)
	s.FilemakerOnly = len(report.Table(TableFilemakerOnly).Rows)
	s.GoogleOnly = len(report.Table(TableGoogleOnly).Rows)
	s.EachToOne = len(report.Table(TableEachToOne).Rows)
	s.AtLeastOneToMult = len(report.Table(TableAtLeastOneToMult).Rows)
	s.Leftovers = len(report.Table(TableLeftovers).Rows)

	return report, nil
}

// perfectMatchesAll finds identifiers referenced by exactly one record in
// each of the three sources.
func perfectMatchesAll(alma, filemaker, google *SourceData) []Row {
	var rows []Row
	for id, keys := range alma.identifiers {
		if len(keys) != 1 || !filemaker.IsSingleton(id) || !google.IsSingleton(id) {
			continue
		}
		rows = append(rows, Row{
			Value:          id,
			Classification: ClassPerfectMatchAll,
			AlmaKeys:       keys,
			FilemakerKeys:  filemaker.Keys(id),
			GoogleKeys:     google.Keys(id),
		})
	}
	sortRows(rows)
	return rows
}

// perfectMatchesPair finds identifiers referenced by exactly one record in
// each of the two sources, regardless of their status in the third.
func perfectMatchesPair(a, b *SourceData) []Row {
	var rows []Row
	for id, keys := range a.identifiers {
		if len(keys) != 1 || !b.IsSingleton(id) {
			continue
		}
		row := Row{Value: id, Classification: ClassPerfectMatchPair}
		setKeys(&row, a, keys)
		setKeys(&row, b, b.Keys(id))
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows
}

// singleSource finds identifiers present in source only, absent from both
// others, reporting the referencing record keys of that source.
func singleSource(source, other1, other2 *SourceData) []Row {
	var rows []Row
	for id, keys := range source.identifiers {
		if other1.Has(id) || other2.Has(id) {
			continue
		}
		row := Row{Value: id, Classification: ClassSingleSource}
		setKeys(&row, source, sortedCopy(keys))
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows
}

// classifyCompounds assigns every Google compound value to one of the three
// buckets. Each atomic identifier in the compound is independently checked
// against Alma and FileMaker:
//
//   - each atom maps to exactly one record across both -> each_to_one_fm_or_alma
//   - some atom maps to multiple records in either -> at_least_one_to_mult_fm_or_alma
//   - everything else -> leftovers
//
// One row is emitted per referencing Google record, so a compound value held
// by several rows appears several times until dedupeBuckets merges them.
func classifyCompounds(alma, filemaker, google *SourceData) []Table {
	buckets := map[string][]Row{}

	for value, googleKeys := range google.compounds {
		atoms := strings.Split(value, invnum.Delimiter)

		eachToOne := true
		anyMult := false
		var almaKeys, filemakerKeys []string
		for _, atom := range atoms {
			almaCount := alma.Count(atom)
			filemakerCount := filemaker.Count(atom)
			if almaCount+filemakerCount != 1 {
				eachToOne = false
			}
			if almaCount > 1 || filemakerCount > 1 {
				anyMult = true
			}
			almaKeys = append(almaKeys, alma.Keys(atom)...)
			filemakerKeys = append(filemakerKeys, filemaker.Keys(atom)...)
		}

		var class string
		switch {
		case eachToOne:
			class = ClassEachToOne
		case anyMult:
			class = ClassAtLeastOneToMult
		default:
			class = ClassLeftovers
		}

		for _, googleKey := range googleKeys {
			buckets[class] = append(buckets[class], Row{
				Value:          value,
				Classification: class,
				AlmaKeys:       dedupeKeys(almaKeys),
				FilemakerKeys:  dedupeKeys(filemakerKeys),
				GoogleKeys:     []string{googleKey},
			})
		}
	}

	return []Table{
		{Name: TableEachToOne, Rows: buckets[ClassEachToOne]},
		{Name: TableAtLeastOneToMult, Rows: buckets[ClassAtLeastOneToMult]},
		{Name: TableLeftovers, Rows: buckets[ClassLeftovers]},
	}
}

// dedupeBuckets resolves compound values that appear more than once across
// (or within) the classification buckets: each value is attributed to
// exactly one bucket, the earliest in precedence order, and its rows are
// merged into a single row with the combined record keys. The pass is
// deterministic and idempotent: applying it to its own output changes
// nothing.
func dedupeBuckets(buckets []Table) []Table {
	seen := make(map[string]struct{})
	out := make([]Table, 0, len(buckets))

	for _, bucket := range buckets {
		merged := make(map[string]*Row)
		var order []string

		for _, row := range bucket.Rows {
			if _, taken := seen[row.Value]; taken {
				continue
			}
			existing, ok := merged[row.Value]
			if !ok {
				r := row
				merged[row.Value] = &r
				order = append(order, row.Value)
				continue
			}
			existing.AlmaKeys = dedupeKeys(append(existing.AlmaKeys, row.AlmaKeys...))
			existing.FilemakerKeys = dedupeKeys(append(existing.FilemakerKeys, row.FilemakerKeys...))
			existing.GoogleKeys = dedupeKeys(append(existing.GoogleKeys, row.GoogleKeys...))
		}

		rows := make([]Row, 0, len(order))
		for _, value := range order {
			seen[value] = struct{}{}
			rows = append(rows, *merged[value])
		}
		sortRows(rows)
		out = append(out, Table{Name: bucket.Name, Rows: rows})
	}

	return out
}

// setKeys stores keys into the row column matching the source system.
func setKeys(row *Row, source *SourceData, keys []string) {
	switch source.System {
	case SystemAlma:
		row.AlmaKeys = keys
	case SystemFilemaker:
		row.FilemakerKeys = keys
	default:
		row.GoogleKeys = keys
	}
}

// dedupeKeys returns the sorted unique keys, nil for empty input.
func dedupeKeys(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	unique := sortedCopy(keys)
	out := unique[:0]
	for i, key := range unique {
		if i == 0 || key != unique[i-1] {
			out = append(out, key)
		}
	}
	return out
}

func sortedCopy(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}

func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Value < rows[j].Value
	})
}
