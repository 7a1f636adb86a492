package config

const (
	// DefaultDir is the template directory used when none is configured.
	DefaultDir = "src/html"
	// DefaultTemplate is the template rendered when none is configured.
	DefaultTemplate = "index.html"
	// DefaultSanitize leaves output untouched.
	DefaultSanitize = "none"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dir:      DefaultDir,
		Template: DefaultTemplate,
		Sanitize: DefaultSanitize,
	}
}
