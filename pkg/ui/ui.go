// Package ui renders command results in the terminal (rich), text (plain)
// and JSON output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/ui/json"
	"github.com/arthur-debert/snaparch/pkg/ui/terminal"
	"github.com/arthur-debert/snaparch/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// Results are the types of the views package.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format, resolving FormatAuto against
// output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
