package matches

import (
	"errors"
	"strconv"

	"github.com/UCLALibrary/ftva-mams-data/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the matches routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/matches")
	group.Post("/run", h.HandleRun)
	group.Get("/summary", h.HandleSummary)
	group.Get("/tables/:name", h.HandleTable)
	group.Get("/history", h.HandleHistory)
}

// HandleRun triggers a full reconciliation run.
// @Summary Run Reconciliation
// @Description Loads the Alma, FileMaker and tracking sheet exports, reconciles them and publishes the result tables to storage.
// @Tags matches
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Run Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /matches/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting reconciliation run")

	rep, run, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Reconciliation run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"run":     run,
		"summary": rep.Summary,
	})
}

// HandleSummary returns the summary of the latest run.
// @Summary Latest Run Summary
// @Description Returns the per-source statistics and match counts of the most recent reconciliation run.
// @Tags matches
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary"
// @Failure 404 {object} map[string]string "No run yet"
// @Router /matches/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	rep, run, err := h.service.Latest()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"run":     run,
		"summary": rep.Summary,
	})
}

// HandleTable returns one result table of the latest run.
// @Summary Result Table
// @Description Returns a named result table (e.g. all_three_sources, alma_only, leftovers) from the most recent run.
// @Tags matches
// @Accept json
// @Produce json
// @Param name path string true "Table name"
// @Success 200 {object} map[string]interface{} "Table"
// @Failure 404 {object} map[string]string "Unknown table or no run yet"
// @Router /matches/tables/{name} [get]
func (h *Handler) HandleTable(c *fiber.Ctx) error {
	rep, _, err := h.service.Latest()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	table := rep.Table(c.Params("name"))
	if table == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown table: " + c.Params("name")})
	}

	return c.JSON(table)
}

// HandleHistory returns persisted run history.
// @Summary Run History
// @Description Returns the most recent persisted reconciliation runs, newest first.
// @Tags matches
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of runs to return (default 20)"
// @Success 200 {array} matches.Run "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /matches/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := h.service.History(c.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrNoDatabase) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to load run history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}
