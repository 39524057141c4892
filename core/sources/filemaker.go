package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"
)

// filemakerRecord is one row of the FileMaker JSON export. Pointer fields
// distinguish a missing field (structural error) from an empty value,
// which is legitimate and merely counted.
type filemakerRecord struct {
	RecordID    *string `json:"recordId"`
	InventoryNo *string `json:"inventory_no"`
}

// LoadFilemaker reads a FileMaker JSON export and returns one record per
// row, keyed by FileMaker record id. Inventory numbers in these exports
// sometimes contain stray non-breaking spaces; those are removed later by
// normalization, not here.
func LoadFilemaker(r io.Reader) ([]reconcile.SourceRecord, error) {
	var rows []filemakerRecord
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decoding FileMaker JSON: %v", ErrMalformedInput, err)
	}

	records := make([]reconcile.SourceRecord, 0, len(rows))
	for i, row := range rows {
		if row.RecordID == nil {
			return nil, fmt.Errorf("%w: FileMaker row %d has no recordId field", ErrMalformedInput, i)
		}
		if row.InventoryNo == nil {
			return nil, fmt.Errorf("%w: FileMaker row %d has no inventory_no field", ErrMalformedInput, i)
		}
		records = append(records, reconcile.SourceRecord{
			Key:   *row.RecordID,
			Value: *row.InventoryNo,
		})
	}
	return records, nil
}

// LoadFilemakerObject fetches the FileMaker export from the storage bucket
// and parses it.
func LoadFilemakerObject(ctx context.Context, client storage.Client, bucket, object string) ([]reconcile.SourceRecord, error) {
	r, err := storage.Fetch(ctx, client, bucket, object)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return LoadFilemaker(r)
}
