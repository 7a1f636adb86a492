package render

import "strings"

// TrimTrailingNewline drops a single trailing line break ("\n" or "\r\n") so a
// rendered page followed by a print newline matches the source file exactly.
// Any further trailing newlines are kept.
func TrimTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}

// OutputOptions describe how rendered text is post-processed before it is
// printed.
type OutputOptions struct {
	// KeepTrailingNewline preserves the template's final newline instead of
	// trimming one.
	KeepTrailingNewline bool
	// Sanitize selects an HTML sanitization policy. The zero value leaves
	// output untouched.
	Sanitize SanitizePolicy
}

// Finalize applies the newline policy and sanitization to rendered output.
func Finalize(rendered string, opts OutputOptions) string {
	out := opts.Sanitize.Apply(rendered)
	if !opts.KeepTrailingNewline {
		out = TrimTrailingNewline(out)
	}
	return out
}
