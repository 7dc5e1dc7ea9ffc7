package server

import "strings"

// Config holds configuration for the diagnostics API.
type Config struct {
	// Port is the port where the API will listen.
	Port string `mapstructure:"port" default:"9090"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
}

// ListenAddr returns the address passed to the HTTP listener.
func (c Config) ListenAddr() string {
	port := strings.TrimPrefix(c.Port, ":")
	if port == "" {
		port = "9090"
	}
	return ":" + port
}
