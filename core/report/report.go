package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/UCLALibrary/ftva-mams-data/core/invnum"
	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"
)

// csvHeader is the column layout shared by all result tables.
var csvHeader = []string{
	"Inventory Number",
	"Classification",
	"Alma Holdings IDs",
	"Filemaker Record IDs",
	"Google Sheet Row Numbers",
}

// WriteTable renders one result table as CSV. Key lists are pipe-joined in
// their cells, mirroring how compound values are stored in the sheet.
func WriteTable(w io.Writer, t reconcile.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header for table %s: %w", t.Name, err)
	}
	for _, row := range t.Rows {
		record := []string{
			row.Value,
			row.Classification,
			invnum.Join(row.AlmaKeys),
			invnum.Join(row.FilemakerKeys),
			invnum.Join(row.GoogleKeys),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row for table %s: %w", t.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteDirectory writes each result table as <dir>/<table name>.csv,
// creating the directory if needed.
func WriteDirectory(dir string, r *reconcile.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory %s: %w", dir, err)
	}
	for _, t := range r.Tables {
		f, err := os.Create(filepath.Join(dir, t.Name+".csv"))
		if err != nil {
			return fmt.Errorf("creating report file for table %s: %w", t.Name, err)
		}
		if err := WriteTable(f, t); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing report file for table %s: %w", t.Name, err)
		}
	}
	return nil
}

// Publish uploads each result table as a CSV object under the given prefix.
func Publish(ctx context.Context, client storage.Client, bucket, prefix string, r *reconcile.Report) error {
	for _, t := range r.Tables {
		var buf bytes.Buffer
		if err := WriteTable(&buf, t); err != nil {
			return err
		}
		object := path.Join(prefix, t.Name+".csv")
		if err := storage.Publish(ctx, client, bucket, object, &buf, int64(buf.Len())); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary renders the run summary as console tables: one with the
// per-source frequency counts, one with the match counts.
func RenderSummary(w io.Writer, s reconcile.Summary) {
	sources := table.NewWriter()
	sources.SetOutputMirror(w)
	sources.SetStyle(table.StyleRounded)
	sources.AppendHeader(table.Row{"Source", "Records", "Total", "Distinct", "Singletons", "Repeats", "Empty"})
	for _, stats := range []reconcile.Stats{s.Alma, s.Filemaker, s.Google} {
		sources.AppendRow(table.Row{
			stats.System,
			stats.Records,
			stats.Total,
			stats.Distinct,
			stats.Singletons,
			stats.Repeats,
			stats.EmptyRecords,
		})
	}
	sources.Render()

	matches := table.NewWriter()
	matches.SetOutputMirror(w)
	matches.SetStyle(table.StyleRounded)
	matches.AppendHeader(table.Row{"Result Table", "Rows"})
	for _, count := range []struct {
		name string
		n    int
	}{
		{reconcile.TableAllThreeSources, s.AllThreeSources},
		{reconcile.TableAlmaAndFilemaker, s.AlmaAndFilemaker},
		{reconcile.TableAlmaAndGoogle, s.AlmaAndGoogle},
		{reconcile.TableFilemakerAndGoogle, s.FilemakerAndGoogle},
		{reconcile.TableAlmaOnly, s.AlmaOnly},
		{reconcile.TableFilemakerOnly, s.FilemakerOnly},
		{reconcile.TableGoogleOnly, s.GoogleOnly},
		{reconcile.TableEachToOne, s.EachToOne},
		{reconcile.TableAtLeastOneToMult, s.AtLeastOneToMult},
		{reconcile.TableLeftovers, s.Leftovers},
	} {
		matches.AppendRow(table.Row{count.name, strconv.Itoa(count.n)})
	}
	matches.Render()
}
