package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/UCLALibrary/ftva-mams-data/core/config"
	"github.com/UCLALibrary/ftva-mams-data/core/database"
	"github.com/UCLALibrary/ftva-mams-data/core/logger"
	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/report"
	"github.com/UCLALibrary/ftva-mams-data/core/sources"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the matches command
	almaFile      string
	filemakerFile string
	googleFile    string
	useDigitalDB  bool
	outputDir     string
	publishReport bool
)

// matchesCmd runs a full reconciliation from the command line.
var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Reconcile inventory numbers across Alma, FileMaker and the tracking sheet",
	Long: `Reconcile inventory numbers across the three sources and report
perfect matches, single-source numbers and compound cell buckets.

Sources are read from the storage bucket by default; each can be
overridden with a local file. With --digital the tracking sheet rows
come from the Digital Labs database instead of the TSV export.

Examples:
  # Reconcile the exports in the storage bucket
  matches

  # Use local export files
  matches --alma holdings.csv --filemaker fm.json --google sheet.tsv

  # Read the tracking sheet from the Digital Labs database
  matches --digital

  # Write one CSV per result table
  matches --output ./results

  # Publish the result tables back to the bucket
  matches --publish`,
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&almaFile, "alma", "", "Local Alma holdings CSV (default: fetch from storage)")
	matchesCmd.Flags().StringVar(&filemakerFile, "filemaker", "", "Local FileMaker JSON export (default: fetch from storage)")
	matchesCmd.Flags().StringVar(&googleFile, "google", "", "Local tracking sheet TSV (default: fetch from storage)")
	matchesCmd.Flags().BoolVar(&useDigitalDB, "digital", false, "Read tracking sheet rows from the Digital Labs database")
	matchesCmd.Flags().StringVar(&outputDir, "output", "", "Directory to write one CSV per result table")
	matchesCmd.Flags().BoolVar(&publishReport, "publish", false, "Publish result tables to the storage bucket")

	RootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting reconciliation")

	// Connect to storage only when some source or output needs it
	var client storage.Client
	if almaFile == "" || filemakerFile == "" || (googleFile == "" && !useDigitalDB) || publishReport {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	almaRecords, err := loadSource(almaFile, sources.LoadAlma, func() ([]reconcile.SourceRecord, error) {
		return sources.LoadAlmaObject(ctx, client, cfg.Storage.Bucket, cfg.Sources.AlmaObject)
	})
	if err != nil {
		return fmt.Errorf("failed to load Alma export: %w", err)
	}

	fmRecords, err := loadSource(filemakerFile, sources.LoadFilemaker, func() ([]reconcile.SourceRecord, error) {
		return sources.LoadFilemakerObject(ctx, client, cfg.Storage.Bucket, cfg.Sources.FilemakerObject)
	})
	if err != nil {
		return fmt.Errorf("failed to load FileMaker export: %w", err)
	}

	var googleRecords []reconcile.SourceRecord
	if useDigitalDB {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		googleRecords, err = sources.LoadDigital(ctx, db, cfg.Sources.DigitalTable)
		if err != nil {
			return fmt.Errorf("failed to load Digital Labs rows: %w", err)
		}
	} else {
		googleRecords, err = loadSource(googleFile, sources.LoadGoogle, func() ([]reconcile.SourceRecord, error) {
			return sources.LoadGoogleObject(ctx, client, cfg.Storage.Bucket, cfg.Sources.GoogleObject)
		})
		if err != nil {
			return fmt.Errorf("failed to load tracking sheet: %w", err)
		}
	}

	rep, err := reconcile.Reconcile(
		sources.NewAlmaData(almaRecords),
		sources.NewFilemakerData(fmRecords),
		sources.NewGoogleData(googleRecords),
	)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	report.RenderSummary(os.Stdout, rep.Summary)

	if outputDir != "" {
		if err := report.WriteDirectory(outputDir, rep); err != nil {
			return fmt.Errorf("failed to write result tables: %w", err)
		}
		l.Info("Result tables written", zap.String("dir", outputDir))
	}

	if publishReport {
		if err := report.Publish(ctx, client, cfg.Storage.Bucket, cfg.Storage.ReportPrefix, rep); err != nil {
			return fmt.Errorf("failed to publish result tables: %w", err)
		}
		l.Info("Result tables published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Storage.ReportPrefix),
		)
	}

	return nil
}

// loadSource reads a source from a local file when a path is given,
// otherwise from the storage bucket.
func loadSource(path string, parse func(r io.Reader) ([]reconcile.SourceRecord, error), fetch func() ([]reconcile.SourceRecord, error)) ([]reconcile.SourceRecord, error) {
	if path == "" {
		return fetch()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}
