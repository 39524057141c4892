package reconcile

import (
	"sort"

	"github.com/UCLALibrary/ftva-mams-data/core/invnum"
)

// SourceData is the identifier index for one source. It is built once from
// boundary-mapped records and read-only afterward.
type SourceData struct {
	// System is the source system name (e.g. "Alma").
	System string

	// KeyLabel describes what the record keys are (e.g. "Holdings IDs").
	KeyLabel string

	// identifiers maps each normalized identifier to the keys of the
	// records referencing it.
	identifiers map[string][]string

	// compounds maps each normalized compound value (pipe-joined atoms) to
	// the keys of the records holding it.
	compounds map[string][]string

	records      int
	total        int
	emptyRecords int
}

// NewSourceData builds the identifier index for one source. Raw fields are
// split and normalized via invnum, so empty and whitespace-only fields
// contribute no identifiers and are counted as empty records.
func NewSourceData(system, keyLabel string, records []SourceRecord) *SourceData {
	s := &SourceData{
		System:      system,
		KeyLabel:    keyLabel,
		identifiers: make(map[string][]string),
		compounds:   make(map[string][]string),
	}

	for _, record := range records {
		s.records++
		ids := invnum.Split(record.Value)
		if len(ids) == 0 {
			s.emptyRecords++
			continue
		}
		for _, id := range ids {
			s.identifiers[id] = append(s.identifiers[id], record.Key)
			s.total++
		}
		if len(ids) > 1 {
			compound := invnum.Join(ids)
			s.compounds[compound] = append(s.compounds[compound], record.Key)
		}
	}

	return s
}

// Keys returns the record keys referencing an identifier, nil if absent.
func (s *SourceData) Keys(id string) []string {
	return s.identifiers[id]
}

// Count returns how many records reference an identifier.
func (s *SourceData) Count(id string) int {
	return len(s.identifiers[id])
}

// Has reports whether an identifier appears in this source at all.
func (s *SourceData) Has(id string) bool {
	return len(s.identifiers[id]) > 0
}

// IsSingleton reports whether exactly one record references an identifier.
func (s *SourceData) IsSingleton(id string) bool {
	return len(s.identifiers[id]) == 1
}

// Identifiers returns all distinct identifiers in this source, sorted.
func (s *SourceData) Identifiers() []string {
	ids := make([]string, 0, len(s.identifiers))
	for id := range s.identifiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Compounds returns all distinct compound values in this source, sorted.
func (s *SourceData) Compounds() []string {
	values := make([]string, 0, len(s.compounds))
	for value := range s.compounds {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

// CompoundKeys returns the record keys holding a compound value.
func (s *SourceData) CompoundKeys(value string) []string {
	return s.compounds[value]
}

// Stats computes the frequency counts for this source.
func (s *SourceData) Stats() Stats {
	stats := Stats{
		System:       s.System,
		Records:      s.records,
		Total:        s.total,
		Distinct:     len(s.identifiers),
		EmptyRecords: s.emptyRecords,
	}
	for _, keys := range s.identifiers {
		if len(keys) == 1 {
			stats.Singletons++
		} else {
			stats.Repeats++
		}
	}
	return stats
}
