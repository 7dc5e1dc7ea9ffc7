package admin

import "github.com/gofiber/fiber/v2"

// Feature mounts the admin diagnostic in the diagnostics API.
type Feature struct {
	handler *Handler
}

// NewFeature creates the admin diagnostic feature.
func NewFeature(service *Service) *Feature {
	return &Feature{handler: NewHandler(service)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "admin"
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
