package status

import (
	"backend-doctor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the status probe.
type Handler struct {
	checker *Checker
}

// NewHandler creates a new HTTP handler.
func NewHandler(checker *Checker) *Handler {
	return &Handler{checker: checker}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/diagnostics/status", h.HandleStatus)
}

// HandleStatus probes the backend and returns the report. A failed probe answers 503.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.checker.logger, c)
	l.Info("Running server status check")

	rep, err := h.checker.Run(c.UserContext())
	if err != nil {
		l.Warn("Server status check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(rep)
	}
	return c.JSON(rep)
}
