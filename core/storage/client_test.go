package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/UCLALibrary/ftva-mams-data/core/storage"
	"github.com/UCLALibrary/ftva-mams-data/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestFetch(t *testing.T) {
	t.Run("ReturnsObjectStream", func(t *testing.T) {
		mockClient := new(mocks.Client)
		content := io.NopCloser(bytes.NewBufferString("Holding Id,Permanent Call Number\n"))
		mockClient.On("GetObject", mock.Anything, "ftva-data", "exports/ftva_holdings.csv", mock.Anything).
			Return(content, nil)

		r, err := storage.Fetch(context.Background(), mockClient, "ftva-data", "exports/ftva_holdings.csv")
		assert.NoError(t, err)
		assert.NotNil(t, r)
		mockClient.AssertExpectations(t)
	})

	t.Run("WrapsError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "ftva-data", "missing.csv", mock.Anything).
			Return(nil, errors.New("no such key"))

		_, err := storage.Fetch(context.Background(), mockClient, "ftva-data", "missing.csv")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing.csv")
	})
}

func TestPublish(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "ftva-data", "reports/all_three_sources.csv", mock.Anything, int64(5), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := storage.Publish(context.Background(), mockClient, "ftva-data", "reports/all_three_sources.csv", bytes.NewBufferString("M123\n"), 5)
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}
