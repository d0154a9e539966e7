// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/snaparch/pkg/ui/views"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *views.Normalization:
		width := 0
		for _, c := range v.Cards {
			width = max(width, len(c.Name))
		}
		for _, c := range v.Cards {
			if _, err := fmt.Fprintf(r.output, "%-*s  %s\n", width, c.Name, c.ID); err != nil {
				return err
			}
		}
		return nil
	case *views.DeckListing:
		return r.lines(v.Cards)
	case *views.DeckCode:
		_, err := io.WriteString(r.output, v.Code)
		return err
	case *views.Classification:
		line := fmt.Sprintf("%s (%s)", v.Name, v.Archetype)
		if !v.Matched {
			line += " [no rule matched]"
		}
		_, err := fmt.Fprintln(r.output, line)
		return err
	case *views.Explanation:
		_, err := io.WriteString(r.output, v.Markdown)
		return err
	case *views.Archetypes:
		return r.lines(v.Archetypes)
	case *views.TournamentReport:
		return r.renderReport(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) lines(items []string) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(r.output, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderReport(v *views.TournamentReport) error {
	title := v.TID
	if v.Name != "" {
		title = v.Name
	}
	if _, err := fmt.Fprintf(r.output, "%s\n", title); err != nil {
		return err
	}
	if v.Summary == nil {
		return nil
	}
	if _, err := fmt.Fprintf(r.output, "%d players, %d skipped, reports written to %s\n",
		v.Summary.Players, v.Summary.Skipped, v.Summary.Dir); err != nil {
		return err
	}
	for _, table := range [][][]string{v.DeckRows(), v.CardRows()} {
		if len(table) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(r.output, "\n%s", Table(table)); err != nil {
			return err
		}
	}
	return nil
}

// Table aligns rows into columns. The first column is left aligned and the
// rest, which hold counts, are right aligned.
func Table(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
				fmt.Fprintf(&b, "%*s", widths[i], cell)
				continue
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
