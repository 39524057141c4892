package matches

import (
	"github.com/UCLALibrary/ftva-mams-data/core/sources"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Matches feature.
func NewFeature(client storage.Client, bucket, reportPrefix string, cfg sources.Config, logger *zap.Logger, db *gorm.DB) *Feature {
	svc := NewService(client, bucket, reportPrefix, cfg, logger, db)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "matches"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
