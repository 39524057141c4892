package matches

import (
	"time"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"

	"github.com/google/uuid"
)

// Run is the persisted record of one reconciliation run. Only the scalar
// summary counts are stored; the full tables live in the published report.
type Run struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	AlmaRecords      int `gorm:"column:alma_records" json:"alma_records"`
	FilemakerRecords int `gorm:"column:filemaker_records" json:"filemaker_records"`
	GoogleRecords    int `gorm:"column:google_records" json:"google_records"`

	AllThreeSources    int `gorm:"column:all_three_sources" json:"all_three_sources"`
	AlmaAndFilemaker   int `gorm:"column:alma_and_filemaker" json:"alma_and_filemaker"`
	AlmaAndGoogle      int `gorm:"column:alma_and_google" json:"alma_and_google"`
	FilemakerAndGoogle int `gorm:"column:filemaker_and_google" json:"filemaker_and_google"`

	AlmaOnly      int `gorm:"column:alma_only" json:"alma_only"`
	FilemakerOnly int `gorm:"column:filemaker_only" json:"filemaker_only"`
	GoogleOnly    int `gorm:"column:google_only" json:"google_only"`

	EachToOne        int `gorm:"column:each_to_one" json:"each_to_one_fm_or_alma"`
	AtLeastOneToMult int `gorm:"column:at_least_one_to_mult" json:"at_least_one_to_mult_fm_or_alma"`
	Leftovers        int `gorm:"column:leftovers" json:"leftovers"`
}

// TableName sets the table name for GORM.
func (Run) TableName() string {
	return "reconciliation_runs"
}

// newRun snapshots a summary into a persistable run record.
func newRun(s reconcile.Summary) *Run {
	return &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),

		AlmaRecords:      s.Alma.Records,
		FilemakerRecords: s.Filemaker.Records,
		GoogleRecords:    s.Google.Records,

		AllThreeSources:    s.AllThreeSources,
		AlmaAndFilemaker:   s.AlmaAndFilemaker,
		AlmaAndGoogle:      s.AlmaAndGoogle,
		FilemakerAndGoogle: s.FilemakerAndGoogle,

		AlmaOnly:      s.AlmaOnly,
		FilemakerOnly: s.FilemakerOnly,
		GoogleOnly:    s.GoogleOnly,

		EachToOne:        s.EachToOne,
		AtLeastOneToMult: s.AtLeastOneToMult,
		Leftovers:        s.Leftovers,
	}
}
