package status

import "time"

// Config holds configuration for the server status probe.
type Config struct {
	// Host is where the backend is reached. The port comes from PORT.
	Host string `mapstructure:"host" default:"localhost"`
	// TimeoutSeconds bounds each probe request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}

// Timeout returns the per-request timeout, DefaultTimeout when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
