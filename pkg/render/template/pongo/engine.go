package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-pagerender/pkg/render/template"
)

// Option configures the pongo2 engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	autoescape bool
}

// WithBaseDir configures the engine to load templates from a directory on
// disk. Relative paths resolve against the process working directory.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS configures the engine to load templates from an fs.FS. When combined
// with WithBaseDir the directory is searched first.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithAutoescape toggles HTML escaping of variable output. It is off by
// default, matching a plain Jinja environment.
func WithAutoescape(enabled bool) Option {
	return func(cfg *config) {
		cfg.autoescape = enabled
	}
}

// pongo2 keeps the autoescape flag in a package global, so executions from
// engines with different settings must not interleave.
var executeMu sync.Mutex

// Engine satisfies template.TemplateRenderer using a pongo2 template set.
// Templates are parsed from their source on every call; nothing is cached.
type Engine struct {
	templateSet *pongo2.TemplateSet
	sources     []fs.FS
	location    string
	autoescape  bool
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: need to provide either base dir or fs.FS")
	}

	var (
		sources   []fs.FS
		locations []string
	)
	if cfg.baseDir != "" {
		sources = append(sources, os.DirFS(cfg.baseDir))
		locations = append(locations, cfg.baseDir)
	}
	if cfg.templates != nil {
		sources = append(sources, cfg.templates)
		locations = append(locations, "fs.FS")
	}

	loaders := make([]pongo2.TemplateLoader, 0, len(sources))
	for _, src := range sources {
		loaders = append(loaders, pongo2.NewFSLoader(src))
	}

	return &Engine{
		templateSet: pongo2.NewSet("pagerender", loaders...),
		sources:     sources,
		location:    strings.Join(locations, ", "),
		autoescape:  cfg.autoescape,
	}, nil
}

// RenderTemplate loads name from the configured sources, renders it with data
// and writes the result to every writer in out. A nil data renders with an
// empty context.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}

	if err := e.lookup(name); err != nil {
		return "", err
	}

	tmpl, err := e.templateSet.FromFile(name)
	if err != nil {
		return "", newSyntaxError(name, err)
	}

	return e.execute(name, tmpl, data, out)
}

// RenderString parses templateContent as an inline template and renders it.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}

	tmpl, err := e.templateSet.FromString(templateContent)
	if err != nil {
		return "", newSyntaxError(inlineTemplateName, err)
	}

	return e.execute(inlineTemplateName, tmpl, data, out)
}

// Location describes where templates are resolved from.
func (e *Engine) Location() string {
	if e == nil {
		return ""
	}
	return e.location
}

func (e *Engine) execute(name string, tmpl *pongo2.Template, data any, out []io.Writer) (string, error) {
	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data: %w", err)
	}

	executeMu.Lock()
	pongo2.SetAutoescape(e.autoescape)
	rendered, err := tmpl.Execute(viewContext)
	executeMu.Unlock()

	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w: %w", name, ErrTemplateExecute, err)
	}

	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) lookup(name string) error {
	if !fs.ValidPath(name) || name == "." {
		return &NotFoundError{Name: name, Location: e.location}
	}

	for _, src := range e.sources {
		info, err := fs.Stat(src, name)
		if err == nil && !info.IsDir() {
			return nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Name: name, Location: e.location, Err: err}
		}
	}
	return &NotFoundError{Name: name, Location: e.location}
}

func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return jsonToContext(v)
	}
}

func jsonToContext(v any) (pongo2.Context, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("context must encode to a JSON object: %w", err)
	}
	return out, nil
}
