// Package server holds the diagnostics API configuration.
//
// The serve command exposes the diagnostics over HTTP. This package defines where it
// listens and the API key that protects it.
package server
