package sources_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/sources"
	"github.com/UCLALibrary/ftva-mams-data/core/storage/mocks"
)

func TestLoadAlma(t *testing.T) {
	t.Run("ReadsHoldings", func(t *testing.T) {
		csv := "Holding Id,Permanent Call Number,MMS Id\n" +
			"221_1,M 123,991\n" +
			"221_2,DVD431,992\n" +
			"221_3,,993\n"

		records, err := sources.LoadAlma(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, []reconcile.SourceRecord{
			{Key: "221_1", Value: "M 123"},
			{Key: "221_2", Value: "DVD431"},
			{Key: "221_3", Value: ""},
		}, records)
	})

	t.Run("StripsByteOrderMark", func(t *testing.T) {
		csv := "\ufeffHolding Id,Permanent Call Number\n221_1,M123\n"

		records, err := sources.LoadAlma(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "221_1", records[0].Key)
	})

	t.Run("MissingColumnIsMalformed", func(t *testing.T) {
		csv := "Holding Id,Some Other Column\n221_1,whatever\n"

		_, err := sources.LoadAlma(strings.NewReader(csv))
		assert.ErrorIs(t, err, sources.ErrMalformedInput)
		assert.Contains(t, err.Error(), "Permanent Call Number")
	})
}

func TestLoadFilemaker(t *testing.T) {
	t.Run("ReadsRecords", func(t *testing.T) {
		data := `[
			{"recordId": "100", "inventory_no": "M123", "title": "Some Film"},
			{"recordId": "101", "inventory_no": ""}
		]`

		records, err := sources.LoadFilemaker(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []reconcile.SourceRecord{
			{Key: "100", Value: "M123"},
			{Key: "101", Value: ""},
		}, records)
	})

	t.Run("MissingFieldIsMalformed", func(t *testing.T) {
		data := `[{"recordId": "100", "title": "No inventory number here"}]`

		_, err := sources.LoadFilemaker(strings.NewReader(data))
		assert.ErrorIs(t, err, sources.ErrMalformedInput)
		assert.Contains(t, err.Error(), "inventory_no")
	})

	t.Run("InvalidJSONIsMalformed", func(t *testing.T) {
		_, err := sources.LoadFilemaker(strings.NewReader("not json"))
		assert.ErrorIs(t, err, sources.ErrMalformedInput)
	})
}

func TestLoadGoogle(t *testing.T) {
	t.Run("KeysAreSheetRowNumbers", func(t *testing.T) {
		tsv := "Legacy Path\tInventory Number [EXTRACTED]\n" +
			"path1\tM123\n" +
			"path2\tM234|M345\n" +
			"path3\t\n"

		records, err := sources.LoadGoogle(strings.NewReader(tsv))
		require.NoError(t, err)
		assert.Equal(t, []reconcile.SourceRecord{
			{Key: "2", Value: "M123"},
			{Key: "3", Value: "M234|M345"},
			{Key: "4", Value: ""},
		}, records)
	})

	t.Run("MissingColumnIsMalformed", func(t *testing.T) {
		tsv := "Legacy Path\tWrong Column\npath1\tM123\n"

		_, err := sources.LoadGoogle(strings.NewReader(tsv))
		assert.ErrorIs(t, err, sources.ErrMalformedInput)
	})
}

func TestLoadObjectsFromBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	content := io.NopCloser(bytes.NewBufferString("Holding Id,Permanent Call Number\n221_1,M123\n"))
	mockClient.On("GetObject", mock.Anything, "ftva-data", "exports/ftva_holdings.csv", mock.Anything).
		Return(content, nil)

	records, err := sources.LoadAlmaObject(context.Background(), mockClient, "ftva-data", "exports/ftva_holdings.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "M123", records[0].Value)
	mockClient.AssertExpectations(t)
}

// setupMockDB creates a mock GORM DB for testing.
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

func TestLoadDigital(t *testing.T) {
	gormDB, dbMock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "inventory_number"}).
		AddRow(1, "M123").
		AddRow(2, "M234|M345").
		AddRow(3, "")
	dbMock.ExpectQuery("SELECT .+ FROM `digital_data`").WillReturnRows(rows)

	records, err := sources.LoadDigital(context.Background(), gormDB, "digital_data")
	require.NoError(t, err)
	assert.Equal(t, []reconcile.SourceRecord{
		{Key: "1", Value: "M123"},
		{Key: "2", Value: "M234|M345"},
		{Key: "3", Value: ""},
	}, records)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestSourceConstructors(t *testing.T) {
	records := []reconcile.SourceRecord{{Key: "1", Value: "M123"}}

	alma := sources.NewAlmaData(records)
	assert.Equal(t, reconcile.SystemAlma, alma.System)
	assert.Equal(t, sources.AlmaKeyLabel, alma.KeyLabel)

	fm := sources.NewFilemakerData(records)
	assert.Equal(t, reconcile.SystemFilemaker, fm.System)

	google := sources.NewGoogleData(records)
	assert.Equal(t, reconcile.SystemGoogle, google.System)
}
