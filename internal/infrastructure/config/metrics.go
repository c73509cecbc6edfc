package config

// MetricsConfig controls the Prometheus endpoint exposing the scheduler's
// decision counters.
type MetricsConfig struct {
	// Enabled turns the metrics HTTP server on or off. The decision
	// pipeline itself never depends on it.
	Enabled bool `mapstructure:"enabled"`

	// Port for the metrics HTTP server
	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Host to bind; defaults to localhost so the endpoint stays private
	Host string `mapstructure:"host"`

	// Path of the scrape endpoint (default: /metrics)
	Path string `mapstructure:"path"`
}
