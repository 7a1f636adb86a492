package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file. Keys absent from the file keep their
// default values and unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Type: ConfigNotFound, File: path, Message: "configuration file not found", Cause: err}
		}
		return nil, &ConfigError{Type: ConfigInvalid, File: path, Message: "failed to read configuration file", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.File = path
			return nil, cfgErr
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration bytes on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Type: ConfigInvalid, Message: "invalid YAML", Cause: err}
	}
	return cfg, nil
}
