package admin

import (
	"backend-doctor/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the admin diagnostic.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the admin diagnostic routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/diagnostics/admin", h.HandleDiagnose)
}

// HandleDiagnose runs the admin diagnostic. It always answers 200, findings are in the report.
func (h *Handler) HandleDiagnose(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Running admin diagnostic")
	return c.JSON(h.service.Run(c.UserContext()))
}
