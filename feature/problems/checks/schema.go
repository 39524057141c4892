package checks

import (
	"github.com/UCLALibrary/ftva-mams-data/core/database"

	"gorm.io/gorm"
)

// digitalColumns are the columns the reconciliation loader reads from the
// Digital Labs sheet table.
var digitalColumns = []string{"id", "inventory_number"}

// DigitalSchema verifies the Digital Labs table carries the columns the
// loader needs and returns the missing ones.
func DigitalSchema(db *gorm.DB, table string) ([]string, error) {
	return database.VerifyTableColumns(db, table, digitalColumns)
}
