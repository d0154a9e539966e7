// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/ui/styles"
	"github.com/arthur-debert/snaparch/pkg/ui/text"
	"github.com/arthur-debert/snaparch/pkg/ui/views"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// WordWrap is the width markdown is wrapped at
const WordWrap = 100

// Renderer provides rich terminal output using lipgloss styles, glamour and pterm
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *views.Normalization:
		var b strings.Builder
		for _, c := range v.Cards {
			fmt.Fprintf(&b, "%s %s %s\n",
				styles.Render("Card", c.Name),
				styles.Render("Muted", "→"),
				styles.Render("Identifier", c.ID))
		}
		return r.write(b.String())
	case *views.DeckListing:
		var b strings.Builder
		b.WriteString(styles.Render("Header", fmt.Sprintf("%d cards", len(v.Cards))) + "\n")
		for _, card := range v.Cards {
			b.WriteString(styles.Render("Bullet", "•") + " " + styles.Render("Identifier", card) + "\n")
		}
		return r.write(b.String())
	case *views.DeckCode:
		// Left unstyled so it can be copied into the game
		return r.write(v.Code)
	case *views.Classification:
		line := styles.Render("RuleName", v.Name) + " " + styles.Render("Archetype", "("+v.Archetype+")")
		if !v.Matched {
			line += " " + styles.Render("Warning", "no rule matched")
		}
		return r.write(line + "\n")
	case *views.Explanation:
		return r.write(renderMarkdown(v.Markdown))
	case *views.Archetypes:
		var b strings.Builder
		for _, a := range v.Archetypes {
			b.WriteString(styles.Render("Bullet", "•") + " " + styles.Render("Archetype", a) + "\n")
		}
		return r.write(b.String())
	case *views.TournamentReport:
		return r.renderReport(v)
	default:
		// For unknown types, just print them
		return r.write(fmt.Sprintf("%+v\n", result))
	}
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}

func (r *Renderer) renderReport(v *views.TournamentReport) error {
	title := v.TID
	if v.Name != "" {
		title = v.Name
	}
	var b strings.Builder
	b.WriteString(styles.Render("Header", title) + "\n")
	if v.Summary != nil {
		summary := fmt.Sprintf("%d players, %d skipped, reports written to %s",
			v.Summary.Players, v.Summary.Skipped, v.Summary.Dir)
		b.WriteString(styles.Render("Muted", summary) + "\n")
		if v.Summary.Decks != nil && v.Summary.Decks.Unclassified > 0 {
			b.WriteString(styles.Render("Warning",
				fmt.Sprintf("%d decks matched no rule", v.Summary.Decks.Unclassified)) + "\n")
		}
	}
	for _, rows := range [][][]string{v.DeckRows(), v.CardRows()} {
		if len(rows) == 0 {
			continue
		}
		b.WriteString("\n" + renderTable(rows))
	}
	return r.write(b.String())
}

// renderTable draws rows with pterm, falling back to plain columns
func renderTable(rows [][]string) string {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		logger := logging.GetLogger("ui.terminal")
		logger.Debug().Err(err).Msg("pterm table failed, using plain table")
		return text.Table(rows)
	}
	return table + "\n"
}

// renderMarkdown renders markdown with glamour, returning it unchanged on failure
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(WordWrap),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.write(styles.Render("Error", "Error:") + " " + err.Error() + "\n")
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.Render("Success", msg) + "\n")
}
