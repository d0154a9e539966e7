// Package views holds the command results handed to the ui renderers.
// Each type is plain data with json tags so the JSON renderer can emit it as is.
package views

import (
	"strconv"

	"github.com/arthur-debert/snaparch/pkg/report"
	"github.com/arthur-debert/snaparch/pkg/rules"
)

// NamedCard pairs a display name with its identifier
type NamedCard struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Normalization is the result of the normalize command
type Normalization struct {
	Cards []NamedCard `json:"cards"`
}

// DeckListing is a decoded deck
type DeckListing struct {
	Cards []string `json:"cards"`
}

// DeckCode is an encoded deck
type DeckCode struct {
	Code  string   `json:"code"`
	Cards []string `json:"cards"`
}

// Classification is the result of classifying one deck
type Classification struct {
	rules.Result
	Cards []string `json:"cards"`
}

// RuleExplanation is one rule in plain words
type RuleExplanation struct {
	Name        string `json:"name"`
	Archetype   string `json:"archetype"`
	Explanation string `json:"explanation"`
}

// Explanation describes a set of rules, both as markdown and per rule
type Explanation struct {
	Markdown string            `json:"-"`
	Rules    []RuleExplanation `json:"rules"`
}

// Archetypes lists the distinct archetype groups of a catalog
type Archetypes struct {
	Archetypes []string `json:"archetypes"`
}

// TournamentReport is the result of the report command
type TournamentReport struct {
	TID     string          `json:"tid"`
	Name    string          `json:"name,omitempty"`
	Summary *report.Summary `json:"summary"`
	// Limit caps the rows shown per table; zero shows every row
	Limit int `json:"-"`
}

// NewExplanation builds the explanation view of rules
func NewExplanation(rs []rules.Rule) *Explanation {
	e := &Explanation{Markdown: rules.ExplainMarkdown(rs), Rules: make([]RuleExplanation, 0, len(rs))}
	for _, r := range rs {
		e.Rules = append(e.Rules, RuleExplanation{Name: r.Name, Archetype: r.Archetype, Explanation: rules.Explain(r)})
	}
	return e
}

// CardRows returns the card table as string rows with a header, capped at limit
func (r *TournamentReport) CardRows() [][]string {
	if r.Summary == nil || r.Summary.Cards == nil {
		return nil
	}
	t := r.Summary.Cards
	rows := [][]string{t.Header()}
	for i, row := range t.Rows {
		if r.Limit > 0 && i >= r.Limit {
			break
		}
		rows = append(rows, append([]string{row.Card}, counts(row.Counts)...))
	}
	return rows
}

// DeckRows returns the per-archetype Total rows with a header, capped at limit
func (r *TournamentReport) DeckRows() [][]string {
	if r.Summary == nil || r.Summary.Decks == nil {
		return nil
	}
	t := r.Summary.Decks
	header := t.Header()
	rows := [][]string{append([]string{header[0]}, header[2:]...)}
	for _, row := range t.Rows {
		if row.Derivation != report.TotalDerivation {
			continue
		}
		if r.Limit > 0 && len(rows) > r.Limit {
			break
		}
		rows = append(rows, append([]string{row.Category}, counts(row.Counts)...))
	}
	return rows
}

func counts(cs []int) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = strconv.Itoa(c)
	}
	return out
}
