package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched.
type GlamourRenderer struct {
	Style string // "auto", a builtin style name or a style file path
	Width int    // word wrap column, 0 keeps glamour's default
}

// NewGlamourRenderer creates a renderer that picks its style from the terminal
func NewGlamourRenderer(width int) *GlamourRenderer {
	return &GlamourRenderer{Style: "auto", Width: width}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
