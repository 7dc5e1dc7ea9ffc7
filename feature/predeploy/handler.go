package predeploy

import (
	"backend-doctor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the predeploy validation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the predeploy routes. The validation may seed a user, so
// it is not exposed over GET.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/diagnostics/predeploy", h.HandlePredeploy)
}

// HandlePredeploy runs the validation. A failed gate answers 412 with the report.
func (h *Handler) HandlePredeploy(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running predeploy validation")

	rep, err := h.service.Run(c.UserContext())
	if err != nil {
		l.Error("Predeploy validation failed", zap.Error(err))
		return c.Status(fiber.StatusPreconditionFailed).JSON(rep)
	}
	return c.JSON(rep)
}
