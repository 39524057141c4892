package matches

import (
	"testing"

	"github.com/UCLALibrary/ftva-mams-data/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	feature := NewFeature(mockClient, "test-bucket", "reports", testConfig(), zap.NewNop(), nil)

	assert.Equal(t, "matches", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
