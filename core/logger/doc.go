// Package logger provides a structured logging facility based on Zap.
//
// Every diagnostic in backend-doctor reports through a *zap.Logger built here. The
// console encoding (the default) colours levels so INFO/WARN/ERROR classifications
// stand out when a check is run by hand or from a deploy pipeline log.
//
// # Context Awareness
//
// When the diagnostics API is served, WithRayID attaches the request's RayID so
// every line produced by a single API-triggered run can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Store found", zap.String("id", store.ID))
package logger
