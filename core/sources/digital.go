package sources

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
)

// digitalRecord is one row of the Digital Labs database, the successor of
// the tracking spreadsheet. Inventory numbers there were normalized at the
// source but may still be compound.
type digitalRecord struct {
	ID              int    `gorm:"column:id"`
	InventoryNumber string `gorm:"column:inventory_number"`
}

// LoadDigital reads tracking records from the Digital Labs database,
// keyed by primary key. It serves the same role as LoadGoogle for
// deployments where the sheet has been migrated into the database.
func LoadDigital(ctx context.Context, db *gorm.DB, table string) ([]reconcile.SourceRecord, error) {
	var rows []digitalRecord
	err := db.WithContext(ctx).
		Table(table).
		Select("id", "inventory_number").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading Digital Labs records from %s: %w", table, err)
	}

	records := make([]reconcile.SourceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, reconcile.SourceRecord{
			Key:   strconv.Itoa(row.ID),
			Value: row.InventoryNumber,
		})
	}
	return records, nil
}
