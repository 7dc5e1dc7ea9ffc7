package status

import "github.com/gofiber/fiber/v2"

// Feature mounts the status probe in the diagnostics API.
type Feature struct {
	handler *Handler
}

// NewFeature creates the status feature.
func NewFeature(checker *Checker) *Feature {
	return &Feature{handler: NewHandler(checker)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
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
