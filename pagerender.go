// Package pagerender renders a page template from a directory with an empty
// context and prints the result.
package pagerender

import (
	"fmt"
	"io"

	"github.com/goliatone/go-pagerender/internal/config"
	"github.com/goliatone/go-pagerender/internal/debug"
	"github.com/goliatone/go-pagerender/pkg/render"
	"github.com/goliatone/go-pagerender/pkg/render/template/pongo"
)

const (
	// DefaultDir is the template directory, relative to the working directory.
	DefaultDir = config.DefaultDir
	// DefaultTemplate is the template rendered from DefaultDir.
	DefaultTemplate = config.DefaultTemplate
)

// Error sentinels re-exported from the engine so callers need not import it.
var (
	ErrTemplateNotFound = pongo.ErrTemplateNotFound
	ErrTemplateSyntax   = pongo.ErrTemplateSyntax
	ErrTemplateExecute  = pongo.ErrTemplateExecute
)

// Option customises RenderPage and Print.
type Option func(*options)

type options struct {
	output     render.OutputOptions
	autoescape bool
}

// WithKeepTrailingNewline keeps the template's final newline instead of
// trimming it before printing.
func WithKeepTrailingNewline(keep bool) Option {
	return func(o *options) {
		o.output.KeepTrailingNewline = keep
	}
}

// WithAutoescape enables HTML escaping of variable output.
func WithAutoescape(enabled bool) Option {
	return func(o *options) {
		o.autoescape = enabled
	}
}

// WithSanitizer runs rendered output through the given policy.
func WithSanitizer(policy render.SanitizePolicy) Option {
	return func(o *options) {
		o.output.Sanitize = policy
	}
}

// RenderPage renders name from dir with an empty context. The template is read
// from disk on every call.
func RenderPage(dir, name string, opts ...Option) (string, error) {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	engine, err := pongo.New(
		pongo.WithBaseDir(dir),
		pongo.WithAutoescape(o.autoescape),
	)
	if err != nil {
		return "", fmt.Errorf("pagerender: %w", err)
	}

	debug.Debug("rendering %q from %s", name, engine.Location())
	rendered, err := engine.RenderTemplate(name, nil)
	if err != nil {
		return "", err
	}
	debug.DebugValue("rendered bytes", len(rendered))

	return render.Finalize(rendered, o.output), nil
}

// Print renders the page and writes it to w followed by a newline. Nothing is
// written when rendering fails.
func Print(w io.Writer, dir, name string, opts ...Option) error {
	out, err := RenderPage(dir, name, opts...)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("pagerender: write output: %w", err)
	}
	return nil
}
