package matches

import (
	"context"
	"errors"
	"sync"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/report"
	"github.com/UCLALibrary/ftva-mams-data/core/sources"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoReport indicates no reconciliation run has completed yet.
var ErrNoReport = errors.New("no reconciliation report available")

// ErrNoDatabase indicates an operation needs the Digital Labs database
// but the service was built without a connection.
var ErrNoDatabase = errors.New("no database connection configured")

// Service runs reconciliations and keeps the latest report in memory.
type Service struct {
	client       storage.Client
	bucket       string
	reportPrefix string
	cfg          sources.Config
	db           *gorm.DB
	logger       *zap.Logger

	mu     sync.RWMutex
	latest *reconcile.Report
	run    *Run
}

// NewService creates a new matches service. The db connection is optional;
// when present it supplies the tracking sheet rows and stores run history.
func NewService(client storage.Client, bucket, reportPrefix string, cfg sources.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:       client,
		bucket:       bucket,
		reportPrefix: reportPrefix,
		cfg:          cfg,
		db:           db,
		logger:       logger,
	}
}

// Run loads all three sources, reconciles them and publishes the result
// tables to storage. The report replaces the previous one atomically.
func (s *Service) Run(ctx context.Context) (*reconcile.Report, *Run, error) {
	almaRecords, err := sources.LoadAlmaObject(ctx, s.client, s.bucket, s.cfg.AlmaObject)
	if err != nil {
		return nil, nil, err
	}

	fmRecords, err := sources.LoadFilemakerObject(ctx, s.client, s.bucket, s.cfg.FilemakerObject)
	if err != nil {
		return nil, nil, err
	}

	var googleRecords []reconcile.SourceRecord
	if s.db != nil {
		googleRecords, err = sources.LoadDigital(ctx, s.db, s.cfg.DigitalTable)
	} else {
		googleRecords, err = sources.LoadGoogleObject(ctx, s.client, s.bucket, s.cfg.GoogleObject)
	}
	if err != nil {
		return nil, nil, err
	}

	rep, err := reconcile.Reconcile(
		sources.NewAlmaData(almaRecords),
		sources.NewFilemakerData(fmRecords),
		sources.NewGoogleData(googleRecords),
	)
	if err != nil {
		return nil, nil, err
	}

	if err := report.Publish(ctx, s.client, s.bucket, s.reportPrefix, rep); err != nil {
		return nil, nil, err
	}

	run := newRun(rep.Summary)
	if s.db != nil {
		if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
			// History is best-effort; the report itself already succeeded.
			s.logger.Warn("Failed to persist run history", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.latest = rep
	s.run = run
	s.mu.Unlock()

	s.logger.Info("Reconciliation completed",
		zap.String("run_id", run.ID),
		zap.Int("all_three_sources", run.AllThreeSources),
		zap.Int("leftovers", run.Leftovers),
	)

	return rep, run, nil
}

// Latest returns the most recent report, or ErrNoReport before the first run.
func (s *Service) Latest() (*reconcile.Report, *Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, nil, ErrNoReport
	}
	return s.latest, s.run, nil
}

// History returns the most recent persisted runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = 20
	}

	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
