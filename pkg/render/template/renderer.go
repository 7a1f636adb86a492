package template

import (
	"io"
)

// TemplateRenderer is the seam the page facade renders through. Data is the
// variable context; nil renders with an empty context.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
