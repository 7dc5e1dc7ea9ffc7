// Package loader provides the feature loading system for the diagnostics API.
//
// Each diagnostic (status, admin, predeploy, schema) implements Feature and mounts
// its own routes. The serve command registers them with a Manager and calls LoadAll.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
