package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UCLALibrary/ftva-mams-data/core/invnum"

	"github.com/spf13/cobra"
)

// extractedColumn is the column added to the output file. Its name matches
// what the reconciliation loader expects in tracking sheet exports.
const extractedColumn = "Inventory Number [EXTRACTED]"

var (
	// Flags for the extract command
	extractInput  string
	extractOutput string
	extractColumn string
)

// extractCmd extracts inventory numbers from a tracking sheet column.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract inventory numbers from a tracking sheet column",
	Long: `Extract FTVA inventory numbers from a column of a TSV export of the
tracking sheet, writing a new file with an added "Inventory Number
[EXTRACTED]" column. Multiple numbers found in one cell are joined with
a pipe, unique and in input order.

The pattern matches most cases but can return false positives where a
substring syntactically matches without being a real inventory number.

Examples:
  # Extract from the default "Legacy Path" column
  extract --input tapes.tsv

  # Extract from another column to a chosen output file
  extract --input tapes.tsv --column "File Path" --output extracted.tsv`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractInput, "input", "", "Path to the tracking sheet TSV export")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "Output path (default: input name with _with_inventory_numbers)")
	extractCmd.Flags().StringVar(&extractColumn, "column", "Legacy Path", "Column to extract inventory numbers from")
	_ = extractCmd.MarkFlagRequired("input")

	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	in, err := os.Open(extractInput)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	output := extractOutput
	if output == "" {
		output = withStemSuffix(extractInput, "_with_inventory_numbers")
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := extractInventoryNumbers(in, out, extractColumn); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Extracted inventory numbers saved to %s\n", output)
	return nil
}

// extractInventoryNumbers copies a TSV, appending a column with the
// inventory numbers extracted from the chosen column.
func extractInventoryNumbers(r io.Reader, w io.Writer, column string) error {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == column {
			col = i
			break
		}
	}
	if col == -1 {
		return fmt.Errorf("input has no %q column", column)
	}

	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	defer writer.Flush()

	if err := writer.Write(append(header, extractedColumn)); err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		value := ""
		if col < len(row) {
			value = row[col]
		}
		if err := writer.Write(append(row, invnum.ExtractJoined(value))); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// withStemSuffix inserts a suffix before the file extension.
func withStemSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
