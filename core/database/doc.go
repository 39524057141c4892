// Package database handles the Digital Labs database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// properly configure MySQL connections based on the application's
// configuration. The Digital Labs database holds the tracking records that
// superseded the Google Sheet, and also stores reconciliation run history.
//
// # Schema Inspection
//
// The package includes the table column inspector used to verify the
// Digital Labs table shape before a run reads it, so schema drift surfaces
// as a structural error up front.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyTableColumns(db, "digital_data", []string{"id", "inventory_number"})
package database
