package problems

import (
	"context"
	"errors"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/sources"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"
	"github.com/UCLALibrary/ftva-mams-data/feature/problems/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase indicates the schema check needs the Digital Labs
// database but the service was built without a connection.
var ErrNoDatabase = errors.New("no database connection configured")

// SourceReport holds the data quality findings for one source.
type SourceReport struct {
	System     string             `json:"system"`
	Records    int                `json:"records"`
	Blank      []checks.Finding   `json:"blank,omitempty"`
	Invalid    []checks.Finding   `json:"invalid,omitempty"`
	Compounds  []checks.Finding   `json:"compounds,omitempty"`
	Duplicates []checks.Duplicate `json:"duplicates,omitempty"`
	Variants   []checks.Duplicate `json:"variants,omitempty"`
}

// Clean reports whether the source had no findings.
func (r *SourceReport) Clean() bool {
	return len(r.Blank) == 0 && len(r.Invalid) == 0 &&
		len(r.Compounds) == 0 && len(r.Duplicates) == 0 &&
		len(r.Variants) == 0
}

// Service handles data quality checks on the reconciliation sources.
type Service struct {
	client storage.Client
	bucket string
	cfg    sources.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new problems service.
func NewService(client storage.Client, bucket string, cfg sources.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CheckAlma checks the Alma holdings export. Alma call numbers are
// expected to hold a single inventory number, so compound cells are
// flagged, as are numbers recorded both with and without a call-number
// suffix.
func (s *Service) CheckAlma(ctx context.Context) (*SourceReport, error) {
	records, err := sources.LoadAlmaObject(ctx, s.client, s.bucket, s.cfg.AlmaObject)
	if err != nil {
		return nil, err
	}

	data := sources.NewAlmaData(records)
	return &SourceReport{
		System:     reconcile.SystemAlma,
		Records:    len(records),
		Blank:      checks.Blank(records),
		Invalid:    checks.Invalid(records),
		Compounds:  checks.Compounds(records),
		Duplicates: checks.Duplicates(data),
		Variants:   checks.VariantCollisions(data),
	}, nil
}

// CheckFilemaker checks the FileMaker export. Like Alma, one inventory
// number per record is expected.
func (s *Service) CheckFilemaker(ctx context.Context) (*SourceReport, error) {
	records, err := sources.LoadFilemakerObject(ctx, s.client, s.bucket, s.cfg.FilemakerObject)
	if err != nil {
		return nil, err
	}

	return &SourceReport{
		System:     reconcile.SystemFilemaker,
		Records:    len(records),
		Blank:      checks.Blank(records),
		Invalid:    checks.Invalid(records),
		Compounds:  checks.Compounds(records),
		Duplicates: checks.Duplicates(sources.NewFilemakerData(records)),
	}, nil
}

// CheckGoogle checks the tracking sheet. Compound cells are legitimate
// there, so only blanks, invalid numbers and duplicates are flagged.
func (s *Service) CheckGoogle(ctx context.Context) (*SourceReport, error) {
	var records []reconcile.SourceRecord
	var err error
	if s.db != nil {
		records, err = sources.LoadDigital(ctx, s.db, s.cfg.DigitalTable)
	} else {
		records, err = sources.LoadGoogleObject(ctx, s.client, s.bucket, s.cfg.GoogleObject)
	}
	if err != nil {
		return nil, err
	}

	return &SourceReport{
		System:     reconcile.SystemGoogle,
		Records:    len(records),
		Blank:      checks.Blank(records),
		Invalid:    checks.Invalid(records),
		Duplicates: checks.Duplicates(sources.NewGoogleData(records)),
	}, nil
}

// CheckSchema verifies the Digital Labs table shape and returns the
// missing columns.
func (s *Service) CheckSchema() ([]string, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.DigitalSchema(s.db, s.cfg.DigitalTable)
}
