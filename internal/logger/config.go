package logger

// Config defines logging configuration.
type Config struct {
	Level       string `yaml:"level" toml:"level"`
	Format      string `yaml:"format" toml:"format"` // json or console
	Development bool   `yaml:"development" toml:"development"`
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		Development: false,
	}
}

// DevelopmentConfig returns a console-friendly debug configuration.
func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
