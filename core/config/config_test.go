package config_test

import (
	"testing"

	"github.com/UCLALibrary/ftva-mams-data/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.Equal(t, "ftva-data", cfg.Storage.Bucket)
	assert.Equal(t, "reports", cfg.Storage.ReportPrefix)
	assert.Equal(t, "digital_labs", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "exports/ftva_holdings.csv", cfg.Sources.AlmaObject)
	assert.Equal(t, "exports/filemaker_data.json", cfg.Sources.FilemakerObject)
	assert.Equal(t, "exports/google_sheet.tsv", cfg.Sources.GoogleObject)
	assert.Equal(t, "digital_data", cfg.Sources.DigitalTable)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SOURCES_DIGITAL_TABLE", "sheet_rows")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sheet_rows", cfg.Sources.DigitalTable)
}
