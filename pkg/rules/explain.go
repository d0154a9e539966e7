package rules

import (
	"fmt"
	"strings"
)

// Explain describes a rule's constraints using the card names it was written with
func Explain(rule Rule) string {
	var parts []string
	if cards := rule.Source.CoreCards; len(cards) > 0 {
		parts = append(parts, fmt.Sprintf("Must contain ALL of: [%s]", joinNames(cards)))
	}
	if cards := rule.Source.AtLeastOneOf; len(cards) > 0 {
		parts = append(parts, fmt.Sprintf("Must contain AT LEAST ONE of: [%s]", joinNames(cards)))
	}
	if cards := rule.Source.BannedCards; len(cards) > 0 {
		parts = append(parts, fmt.Sprintf("Must NOT contain: [%s]", joinNames(cards)))
	}
	if len(parts) == 0 {
		return "Matches any deck"
	}
	return strings.Join(parts, "; ")
}

func joinNames(entries []interface{}) string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, fmt.Sprint(entry))
	}
	return strings.Join(names, ", ")
}

// ExplainMarkdown renders rules as a markdown document, in priority order
func ExplainMarkdown(rules []Rule) string {
	var b strings.Builder
	b.WriteString("# Archetype rules\n\n")
	b.WriteString("Rules are checked in order; the first match wins.\n\n")
	for i, rule := range rules {
		fmt.Fprintf(&b, "%d. **%s**", i+1, rule.Name)
		if rule.Archetype != rule.Name {
			fmt.Fprintf(&b, " _(%s)_", rule.Archetype)
		}
		fmt.Fprintf(&b, ": %s\n", Explain(rule))
	}
	return b.String()
}
