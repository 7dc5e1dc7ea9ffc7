package schema

import (
	"backend-doctor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the schema check.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the schema routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/diagnostics/schema", h.HandleSchemaCheck)
}

// HandleSchemaCheck compares the user and store tables with their models.
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running schema check")

	report, err := h.service.Check(c.UserContext())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
