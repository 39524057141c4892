package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"
)

// googleInventoryColumn is the column of extracted inventory numbers in the
// tracking sheet, as produced by the extract command (and its predecessor).
// Cells may hold several numbers joined by a pipe.
const googleInventoryColumn = "Inventory Number [EXTRACTED]"

// LoadGoogle reads a TSV export of the tracking sheet. Records are keyed by
// the 1-based spreadsheet row number, so the first data row after the
// header is row 2, matching what users see in the sheet itself.
func LoadGoogle(r io.Reader) ([]reconcile.SourceRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet TSV header: %v", ErrMalformedInput, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col, err := columnIndex(header, googleInventoryColumn)
	if err != nil {
		return nil, err
	}

	var records []reconcile.SourceRecord
	rowNumber := 1 // header row
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sheet TSV row: %w", err)
		}
		rowNumber++
		records = append(records, reconcile.SourceRecord{
			Key:   strconv.Itoa(rowNumber),
			Value: field(row, col),
		})
	}
	return records, nil
}

// LoadGoogleObject fetches the tracking sheet export from the storage
// bucket and parses it.
func LoadGoogleObject(ctx context.Context, client storage.Client, bucket, object string) ([]reconcile.SourceRecord, error) {
	r, err := storage.Fetch(ctx, client, bucket, object)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return LoadGoogle(r)
}
