// Package template defines the engine-agnostic renderer contract used by the
// page facade. The pongo subpackage provides the Jinja-syntax implementation
// backed by pongo2.
package template
