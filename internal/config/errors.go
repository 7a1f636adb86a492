package config

import "fmt"

// ErrorType classifies configuration failures.
type ErrorType int

const (
	// ConfigNotFound indicates the configuration file was not found.
	ConfigNotFound ErrorType = iota
	// ConfigInvalid indicates the file could not be read or parsed.
	ConfigInvalid
	// ConfigValidationFailed indicates a field holds an unusable value.
	ConfigValidationFailed
)

// ConfigError represents a configuration-related error.
type ConfigError struct {
	Type    ErrorType
	Message string
	File    string
	Field   string
	Cause   error
}

func (e *ConfigError) Error() string {
	prefix := "config"
	if e.File != "" {
		prefix = fmt.Sprintf("config: %s", e.File)
	}
	if e.Field != "" {
		prefix = fmt.Sprintf("%s [field: %s]", prefix, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func newFieldError(field, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    ConfigValidationFailed,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
