package report_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/report"
	"github.com/UCLALibrary/ftva-mams-data/core/storage/mocks"
)

func sampleReport() *reconcile.Report {
	return &reconcile.Report{
		Tables: []reconcile.Table{
			{
				Name: reconcile.TableAllThreeSources,
				Rows: []reconcile.Row{
					{
						Value:          "M123",
						Classification: reconcile.ClassPerfectMatchAll,
						AlmaKeys:       []string{"A1"},
						FilemakerKeys:  []string{"F1"},
						GoogleKeys:     []string{"2"},
					},
				},
			},
			{
				Name: reconcile.TableFilemakerOnly,
				Rows: []reconcile.Row{
					{
						Value:          "T55",
						Classification: reconcile.ClassSingleSource,
						FilemakerKeys:  []string{"FM100", "FM205"},
					},
				},
			},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteTable(&buf, sampleReport().Tables[1])
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Inventory Number,Classification,Alma Holdings IDs,Filemaker Record IDs,Google Sheet Row Numbers", lines[0])
	assert.Equal(t, "T55,single_source,,FM100|FM205,", lines[1])
}

func TestWriteDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, report.WriteDirectory(dir, sampleReport()))

	content, err := os.ReadFile(filepath.Join(dir, "all_three_sources.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "M123,perfect_match_all_sources,A1,F1,2")

	_, err = os.Stat(filepath.Join(dir, "filemaker_only.csv"))
	assert.NoError(t, err)
}

func TestPublish(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "ftva-data", "reports/all_three_sources.csv",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
	mockClient.On("PutObject", mock.Anything, "ftva-data", "reports/filemaker_only.csv",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	err := report.Publish(context.Background(), mockClient, "ftva-data", "reports", sampleReport())
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := reconcile.Summary{
		Alma:            reconcile.Stats{System: reconcile.SystemAlma, Records: 3, Total: 3, Distinct: 3, Singletons: 3},
		Filemaker:       reconcile.Stats{System: reconcile.SystemFilemaker},
		Google:          reconcile.Stats{System: reconcile.SystemGoogle},
		AllThreeSources: 2,
	}
	report.RenderSummary(&buf, summary)

	out := buf.String()
	assert.Contains(t, out, reconcile.SystemAlma)
	assert.Contains(t, out, "all_three_sources")
}
