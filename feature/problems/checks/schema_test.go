package checks

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

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

func TestDigitalSchema(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int", "NO", "PRI", nil, "").
		AddRow("title", "varchar(255)", "YES", "", nil, "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `sheet_rows`").WillReturnRows(rows)

	missing, err := DigitalSchema(db, "sheet_rows")
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory_number"}, missing)
}
