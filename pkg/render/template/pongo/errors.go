package pongo

import (
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

const inlineTemplateName = "<string>"

var (
	// ErrTemplateNotFound reports that the named template does not exist in
	// any configured source.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateSyntax reports that a template failed to parse.
	ErrTemplateSyntax = errors.New("template syntax error")
	// ErrTemplateExecute reports that a parsed template failed to evaluate.
	ErrTemplateExecute = errors.New("template execution failed")
)

// NotFoundError carries the template lookup that failed. It matches
// ErrTemplateNotFound with errors.Is.
type NotFoundError struct {
	Name     string
	Location string
	Err      error
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("pongo: load template %q from %s: %s", e.Name, e.Location, ErrTemplateNotFound)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// SyntaxError describes a parse failure. Line and Column are 1-based and zero
// when pongo2 could not attribute the failure to a position.
type SyntaxError struct {
	Name   string
	Line   int
	Column int
	Err    error
}

func newSyntaxError(name string, err error) *SyntaxError {
	out := &SyntaxError{Name: name, Err: err}
	var perr *pongo2.Error
	if errors.As(err, &perr) {
		out.Line = perr.Line
		out.Column = perr.Column
	}
	return out
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pongo: parse template %q (line %d, column %d): %s: %v", e.Name, e.Line, e.Column, ErrTemplateSyntax, e.Err)
	}
	return fmt.Sprintf("pongo: parse template %q: %s: %v", e.Name, ErrTemplateSyntax, e.Err)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrTemplateSyntax
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
