package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:     "localhost",
			Port:     9999, // Unused port
			User:     "root",
			Password: "wrongpassword",
			Name:     "digital_labs",
		}

		// Connect should fail (timeout or refused); the error path is
		// what matters here, a real database is not available in tests.
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestVerifyTableColumns(t *testing.T) {
	columns := []string{"Field", "Type", "Null", "Key", "Default", "Extra"}

	t.Run("AllPresent", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		rows := sqlmock.NewRows(columns).
			AddRow("id", "int", "NO", "PRI", nil, "auto_increment").
			AddRow("inventory_number", "varchar(255)", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `digital_data`").WillReturnRows(rows)

		missing, err := VerifyTableColumns(gormDB, "digital_data", []string{"id", "inventory_number"})
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		rows := sqlmock.NewRows(columns).
			AddRow("id", "int", "NO", "PRI", nil, "auto_increment")
		mock.ExpectQuery("SHOW COLUMNS FROM `digital_data`").WillReturnRows(rows)

		missing, err := VerifyTableColumns(gormDB, "digital_data", []string{"id", "inventory_number"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"inventory_number"}, missing)
	})
}
