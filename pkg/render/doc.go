// Package render post-processes rendered pages before they are printed:
// trailing-newline trimming and optional bluemonday sanitization.
package render
