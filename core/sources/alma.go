package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"
)

// Column names in the Alma holdings report.
const (
	almaHoldingIDColumn  = "Holding Id"
	almaCallNumberColumn = "Permanent Call Number"
)

// LoadAlma reads an Alma holdings CSV export and returns one record per
// holdings row, keyed by holdings id. Reports exported from Alma on Windows
// start with a UTF-8 byte order mark, which is stripped before header
// matching.
func LoadAlma(r io.Reader) ([]reconcile.SourceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading Alma CSV header: %v", ErrMalformedInput, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idCol, err := columnIndex(header, almaHoldingIDColumn)
	if err != nil {
		return nil, err
	}
	callNumberCol, err := columnIndex(header, almaCallNumberColumn)
	if err != nil {
		return nil, err
	}

	var records []reconcile.SourceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading Alma CSV row: %w", err)
		}
		records = append(records, reconcile.SourceRecord{
			Key:   field(row, idCol),
			Value: field(row, callNumberCol),
		})
	}
	return records, nil
}

// LoadAlmaObject fetches the Alma holdings export from the storage bucket
// and parses it.
func LoadAlmaObject(ctx context.Context, client storage.Client, bucket, object string) ([]reconcile.SourceRecord, error) {
	r, err := storage.Fetch(ctx, client, bucket, object)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return LoadAlma(r)
}

// columnIndex finds a required column in a header row.
func columnIndex(header []string, name string) (int, error) {
	for i, column := range header {
		if strings.TrimSpace(column) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: missing column %q", ErrMalformedInput, name)
}

// field returns a row value, tolerating short rows.
func field(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}
