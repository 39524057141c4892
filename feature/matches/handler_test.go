package matches

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/UCLALibrary/ftva-mams-data/core/reconcile"
	"github.com/UCLALibrary/ftva-mams-data/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "reports", testConfig(), zap.NewNop(), nil)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func stubRun(mockClient *mocks.Client) {
	for _, object := range []string{"exports/alma.csv", "exports/filemaker.json", "exports/google.tsv"} {
		body := map[string]string{
			"exports/alma.csv":       almaCSV,
			"exports/filemaker.json": filemakerJSON,
			"exports/google.tsv":     googleTSV,
		}[object]
		mockClient.On("GetObject", mock.Anything, "test-bucket", object, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(body))), nil).Once()
	}
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
}

func TestHandleRun(t *testing.T) {
	app, mockClient := setupTestApp(t)
	stubRun(mockClient)

	resp, err := app.Test(httptest.NewRequest("POST", "/matches/run", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "run")
	assert.Contains(t, body, "summary")
}

func TestHandleRun_Failure(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("GetObject", mock.Anything, "test-bucket", "exports/alma.csv", mock.Anything).
		Return(nil, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("POST", "/matches/run", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleSummary(t *testing.T) {
	app, mockClient := setupTestApp(t)

	// No run yet.
	resp, err := app.Test(httptest.NewRequest("GET", "/matches/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	stubRun(mockClient)
	resp, err = app.Test(httptest.NewRequest("POST", "/matches/run", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/matches/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleTable(t *testing.T) {
	app, mockClient := setupTestApp(t)
	stubRun(mockClient)

	resp, err := app.Test(httptest.NewRequest("POST", "/matches/run", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/matches/tables/"+reconcile.TableAllThreeSources, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var table reconcile.Table
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))
	assert.Equal(t, reconcile.TableAllThreeSources, table.Name)

	resp, err = app.Test(httptest.NewRequest("GET", "/matches/tables/nonsense", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleHistory_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/matches/history", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
