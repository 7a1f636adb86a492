package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-pagerender/pkg/render"
)

// Validate checks that the configuration can drive a render.
func (c *Config) Validate() error {
	if c == nil {
		return newFieldError("", "configuration cannot be nil", nil)
	}
	if strings.TrimSpace(c.Dir) == "" {
		return newFieldError("dir", "template directory is required", nil)
	}
	if strings.TrimSpace(c.Template) == "" {
		return newFieldError("template", "template name is required", nil)
	}
	if filepath.IsAbs(c.Template) || !fs.ValidPath(filepath.ToSlash(c.Template)) {
		return newFieldError("template", "template name must be a relative path inside the template directory", nil)
	}
	if _, err := render.ParseSanitizePolicy(c.Sanitize); err != nil {
		return newFieldError("sanitize", "unsupported policy", err)
	}
	return nil
}

// SanitizePolicy returns the parsed sanitize policy. Call Validate first; an
// unknown name falls back to the verbatim policy.
func (c *Config) SanitizePolicy() render.SanitizePolicy {
	policy, err := render.ParseSanitizePolicy(c.Sanitize)
	if err != nil {
		return render.SanitizeNone
	}
	return policy
}
