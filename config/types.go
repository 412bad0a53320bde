package config

// InputConfig controls where request lines come from.
type InputConfig struct {
	// Path is a request script path or URL; empty means stdin.
	Path string `yaml:"path"`
}

// LoggingConfig controls the run log on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// LimitsConfig pins the protocol constants a deployment expects. Values
// that disagree with what the binary enforces are rejected at load time
// instead of being silently overridden.
type LimitsConfig struct {
	MaxTripMinutes int    `yaml:"maxTripMinutes" validate:"gte=0"`
	DayStart       string `yaml:"dayStart"`
	DayEnd         string `yaml:"dayEnd"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
	Limits  LimitsConfig  `yaml:"limits"`
}
