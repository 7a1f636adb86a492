package config

// Config holds the settings for one render run.
type Config struct {
	// Dir is the template base directory, relative to the working directory
	// unless absolute.
	Dir string `yaml:"dir"`
	// Template is the template file name inside Dir.
	Template string `yaml:"template"`
	// KeepTrailingNewline keeps the template's final newline in the output.
	KeepTrailingNewline bool `yaml:"keep_trailing_newline"`
	// Autoescape enables HTML escaping of variable output.
	Autoescape bool `yaml:"autoescape"`
	// Sanitize names an output sanitization policy (none, ugc, strict).
	Sanitize string `yaml:"sanitize"`
	// Debug enables debug logging on stderr.
	Debug bool `yaml:"debug"`
}
