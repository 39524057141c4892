package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Flags for the duplicates command
	duplicatesInput  string
	duplicatesOutput string
	duplicatesColumn string
	removeDuplicates bool
)

// duplicatesCmd reports rows duplicated on a chosen column.
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Report rows duplicated on a tracking sheet column",
	Long: `Find rows of a TSV export that share a value in the chosen column.
Every occurrence of a duplicated value is reported, with an "Original
Row Number" column matching what users see in the sheet (1-based, after
the header row).

With --remove, a cleaned copy keeping the first occurrence of each value
replaces the input file.

Examples:
  # Report duplicates on the default "Legacy Path" column
  duplicates --input tapes.tsv

  # Report and remove them from the input file
  duplicates --input tapes.tsv --remove`,
	RunE: runDuplicates,
}

func init() {
	duplicatesCmd.Flags().StringVar(&duplicatesInput, "input", "", "Path to the tracking sheet TSV export")
	duplicatesCmd.Flags().StringVar(&duplicatesOutput, "output", "duplicate_rows.tsv", "Output path for the duplicate row report")
	duplicatesCmd.Flags().StringVar(&duplicatesColumn, "column", "Legacy Path", "Column to check for duplicate values")
	duplicatesCmd.Flags().BoolVar(&removeDuplicates, "remove", false, "Remove duplicate rows from the input file, keeping the first occurrence")
	_ = duplicatesCmd.MarkFlagRequired("input")

	RootCmd.AddCommand(duplicatesCmd)
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	header, rows, err := readTSV(duplicatesInput)
	if err != nil {
		return err
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == duplicatesColumn {
			col = i
			break
		}
	}
	if col == -1 {
		return fmt.Errorf("input has no %q column", duplicatesColumn)
	}

	duplicates := findDuplicateRows(rows, col)
	if len(duplicates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No duplicate rows found.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d duplicate rows found.\n", len(duplicates))

	if err := writeDuplicateReport(duplicatesOutput, header, rows, duplicates); err != nil {
		return fmt.Errorf("failed to write duplicate report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Duplicate rows saved to %s.\n", duplicatesOutput)

	if removeDuplicates {
		if err := writeDeduplicated(duplicatesInput, header, rows, col); err != nil {
			return fmt.Errorf("failed to remove duplicates: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Duplicate rows removed. Updated file saved to %s.\n", duplicatesInput)
	}

	return nil
}

// findDuplicateRows returns the 0-based indices of every row whose value
// in the chosen column appears more than once, in input order.
func findDuplicateRows(rows [][]string, col int) []int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[field(row, col)]++
	}

	var duplicates []int
	for i, row := range rows {
		if counts[field(row, col)] > 1 {
			duplicates = append(duplicates, i)
		}
	}
	return duplicates
}

func readTSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// writeDuplicateReport writes the flagged rows with a leading original
// row number column. Row numbers are index+2: 1-based plus the header row.
func writeDuplicateReport(path string, header []string, rows [][]string, duplicates []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = '\t'

	if err := writer.Write(append([]string{"Original Row Number"}, header...)); err != nil {
		return err
	}
	for _, i := range duplicates {
		row := append([]string{strconv.Itoa(i + 2)}, rows[i]...)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeDeduplicated rewrites the file keeping the first occurrence of
// each value in the chosen column.
func writeDeduplicated(path string, header []string, rows [][]string, col int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = '\t'

	if err := writer.Write(header); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		value := field(row, col)
		if seen[value] {
			continue
		}
		seen[value] = true
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// field returns a row value, tolerating short rows.
func field(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}
