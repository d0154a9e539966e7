package rules

import (
	"fmt"

	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
)

// Catalog is an ordered, immutable list of rules. It is safe to share
// between goroutines.
type Catalog struct {
	rules []Rule
}

// NewCatalog builds a Catalog from records, normalizing every card list with
// n. Record order is kept. A record without a name is rejected.
func NewCatalog(records []Record, n *cards.Normalizer) (*Catalog, error) {
	logger := logging.GetLogger("rules.catalog")

	built := make([]Rule, 0, len(records))
	for i, record := range records {
		if record.Name == "" {
			return nil, errors.Newf(errors.ErrRulesInvalid, "rule %d has empty name", i).
				WithDetail("index", i)
		}

		archetype := record.Archetype
		if archetype == "" {
			archetype = record.Name
		}

		rule := Rule{
			Name:         record.Name,
			Archetype:    archetype,
			CoreCards:    normalizeList(n, record.Name, "core_cards", record.CoreCards),
			AtLeastOneOf: normalizeList(n, record.Name, "at_least_one_of", record.AtLeastOneOf),
			BannedCards:  normalizeList(n, record.Name, "banned_cards", record.BannedCards),
			Source:       record,
		}
		built = append(built, rule)
	}

	c := &Catalog{rules: built}
	logger.Debug().
		Int("ruleCount", len(built)).
		Strs("archetypes", c.Archetypes()).
		Msg("Built rule catalog")

	return c, nil
}

// normalizeList converts display names to identifiers, dropping repeats.
// Entries that are not strings become cards.Invalid, which no deck holds.
func normalizeList(n *cards.Normalizer, rule, field string, entries []interface{}) []string {
	if len(entries) == 0 {
		return nil
	}

	logger := logging.GetLogger("rules.catalog")
	seen := make(map[string]bool, len(entries))
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		id := cards.Invalid
		if name, ok := entry.(string); ok {
			id = n.Normalize(name)
		} else {
			logger.Warn().
				Str("rule", rule).
				Str("field", field).
				Str("entry", fmt.Sprint(entry)).
				Msg("Card entry is not a string, it will never match")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Rules returns the rules in priority order
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of rules
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Find returns the first rule with the given name
func (c *Catalog) Find(name string) (Rule, bool) {
	for _, rule := range c.rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return Rule{}, false
}

// Archetypes returns the distinct archetype groups in first-seen order
func (c *Catalog) Archetypes() []string {
	seen := make(map[string]bool)
	var archetypes []string
	for _, rule := range c.rules {
		if seen[rule.Archetype] {
			continue
		}
		seen[rule.Archetype] = true
		archetypes = append(archetypes, rule.Archetype)
	}
	return archetypes
}
