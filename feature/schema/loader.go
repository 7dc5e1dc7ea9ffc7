package schema

import "github.com/gofiber/fiber/v2"

// Feature mounts the schema check in the diagnostics API.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the schema feature. It is disabled without a database.
func NewFeature(service *Service) *Feature {
	return &Feature{
		handler: NewHandler(service),
		enabled: service.db != nil,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "schema"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
