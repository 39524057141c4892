package problems

import (
	"context"
	"errors"

	"github.com/UCLALibrary/ftva-mams-data/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for data quality checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the problems routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/problems")
	group.Get("/", h.HandleAllChecks)
	group.Get("/alma", h.HandleAlmaCheck)
	group.Get("/filemaker", h.HandleFilemakerCheck)
	group.Get("/google", h.HandleGoogleCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleAllChecks runs every data quality check.
// @Summary Run All Data Quality Checks
// @Description Checks all three sources for blank, invalid, compound and duplicate inventory numbers, plus the Digital Labs table schema.
// @Tags problems
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /problems [get]
func (h *Handler) HandleAllChecks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running all data quality checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if alma, err := h.service.CheckAlma(ctx); err != nil {
		report["alma"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["alma"] = alma
	}

	if fm, err := h.service.CheckFilemaker(ctx); err != nil {
		report["filemaker"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["filemaker"] = fm
	}

	if google, err := h.service.CheckGoogle(ctx); err != nil {
		report["google"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["google"] = google
	}

	if missing, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	return c.JSON(report)
}

// HandleAlmaCheck checks the Alma export.
// @Summary Check Alma Export
// @Description Flags blank, invalid, compound, duplicate and suffix-variant call numbers in the Alma holdings export.
// @Tags problems
// @Accept json
// @Produce json
// @Success 200 {object} problems.SourceReport "Alma Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /problems/alma [get]
func (h *Handler) HandleAlmaCheck(c *fiber.Ctx) error {
	return h.sourceCheck(c, h.service.CheckAlma)
}

// HandleFilemakerCheck checks the FileMaker export.
// @Summary Check FileMaker Export
// @Description Flags blank, invalid, compound and duplicate inventory numbers in the FileMaker export.
// @Tags problems
// @Accept json
// @Produce json
// @Success 200 {object} problems.SourceReport "FileMaker Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /problems/filemaker [get]
func (h *Handler) HandleFilemakerCheck(c *fiber.Ctx) error {
	return h.sourceCheck(c, h.service.CheckFilemaker)
}

// HandleGoogleCheck checks the tracking sheet.
// @Summary Check Tracking Sheet
// @Description Flags blank, invalid and duplicate inventory numbers in the tracking sheet.
// @Tags problems
// @Accept json
// @Produce json
// @Success 200 {object} problems.SourceReport "Tracking Sheet Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /problems/google [get]
func (h *Handler) HandleGoogleCheck(c *fiber.Ctx) error {
	return h.sourceCheck(c, h.service.CheckGoogle)
}

// HandleSchemaCheck checks the Digital Labs table schema.
// @Summary Check Digital Labs Schema
// @Description Verifies that the Digital Labs table carries the columns the reconciliation loader reads.
// @Tags problems
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Schema Report"
// @Failure 404 {object} map[string]string "No database configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /problems/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckSchema()
	if err != nil {
		if errors.Is(err, ErrNoDatabase) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing columns detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

func (h *Handler) sourceCheck(c *fiber.Ctx, check func(ctx context.Context) (*SourceReport, error)) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := check(c.Context())
	if err != nil {
		l.Error("Source check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Clean() {
		l.Warn("Data quality findings",
			zap.String("system", report.System),
			zap.Int("blank", len(report.Blank)),
			zap.Int("invalid", len(report.Invalid)),
			zap.Int("compounds", len(report.Compounds)),
			zap.Int("duplicates", len(report.Duplicates)),
			zap.Int("variants", len(report.Variants)),
		)
	}

	return c.JSON(report)
}
