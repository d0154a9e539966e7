package report

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/deck"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/rules"
	"github.com/arthur-debert/snaparch/pkg/topdeck"
)

// DeckSize is the number of cards in a legal deck
const DeckSize = 12

// TotalDerivation labels the per-archetype sum row in deck tables
const TotalDerivation = "Total"

// Entry is a player's placement together with the decoded deck
type Entry struct {
	Player   string
	Standing int
	Deck     deck.Deck
}

// CardRow holds one card's counts, aligned with the table's cuts
type CardRow struct {
	Card   string `json:"card"`
	Counts []int  `json:"counts"`
}

// CardTable is the card usage report
type CardTable struct {
	Cuts []int     `json:"cuts"`
	Rows []CardRow `json:"rows"`
}

// DeckRow holds the counts of one rule name within an archetype group
type DeckRow struct {
	Category   string `json:"category"`
	Derivation string `json:"derivation"`
	Counts     []int  `json:"counts"`
}

// DeckTable is the archetype usage report. Each group starts with its Total row.
type DeckTable struct {
	Cuts         []int     `json:"cuts"`
	Rows         []DeckRow `json:"rows"`
	Unclassified int       `json:"unclassified"`
}

// Header returns the CSV header of the card table
func (t *CardTable) Header() []string {
	return append([]string{"Name", "Count"}, cutColumns(t.Cuts)...)
}

// Header returns the CSV header of the deck table
func (t *DeckTable) Header() []string {
	return append([]string{"Category", "Derivation", "Count"}, cutColumns(t.Cuts)...)
}

func cutColumns(cuts []int) []string {
	if len(cuts) < 2 {
		return nil
	}
	columns := make([]string, 0, len(cuts)-1)
	for _, cut := range cuts[1:] {
		columns = append(columns, fmt.Sprintf("Top %d", cut))
	}
	return columns
}

func validateCuts(cuts []int) error {
	if len(cuts) == 0 {
		return errors.New(errors.ErrInvalidInput, "must include at least one cut of players")
	}
	for _, cut := range cuts {
		if cut <= 0 {
			return errors.Newf(errors.ErrInvalidInput, "cuts must be positive, got %d", cut).
				WithDetail("cut", cut)
		}
	}
	return nil
}

// Entries decodes the deck of every standing. Standings whose deck cannot be
// read are logged and skipped; the number skipped is returned.
func Entries(standings []topdeck.Standing, n *cards.Normalizer) ([]Entry, int) {
	logger := logging.GetLogger("report")
	entries := make([]Entry, 0, len(standings))
	skipped := 0
	for _, s := range standings {
		d, err := s.CardIdentifiers(n)
		if err != nil {
			logger.Warn().Err(err).Str("player", s.Name).Msg("Skipping standing without a readable deck")
			skipped++
			continue
		}
		entries = append(entries, Entry{Player: s.Name, Standing: s.Standing, Deck: d})
	}
	return entries, skipped
}

// cutsFor marks the cuts that include a standing
func cutsFor(standing int, cuts []int) ([]bool, bool) {
	in := make([]bool, len(cuts))
	included := false
	for i, cut := range cuts {
		if standing <= cut {
			in[i] = true
			included = true
		}
	}
	return in, included
}

// CardStats counts, for every card, the decks containing it within each cut
func CardStats(entries []Entry, cuts []int) (*CardTable, error) {
	if err := validateCuts(cuts); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("report")
	logger.Info().Int("num_players", len(entries)).Msg("Parsing cards")

	counts := make(map[string][]int)
	for _, e := range entries {
		in, ok := cutsFor(e.Standing, cuts)
		if !ok {
			continue
		}
		if e.Deck.Len() != DeckSize {
			logger.Warn().Str("player", e.Player).Int("cards", e.Deck.Len()).Msg("Deck not made of 12 cards")
		}
		for _, card := range e.Deck.Cards() {
			row, exists := counts[card]
			if !exists {
				row = make([]int, len(cuts))
				counts[card] = row
			}
			for i := range cuts {
				if in[i] {
					row[i]++
				}
			}
		}
	}

	table := &CardTable{Cuts: append([]int(nil), cuts...), Rows: make([]CardRow, 0, len(counts))}
	for card, row := range counts {
		table.Rows = append(table.Rows, CardRow{Card: card, Counts: row})
	}
	sort.Slice(table.Rows, func(i, j int) bool {
		a, b := table.Rows[i], table.Rows[j]
		if a.Counts[0] != b.Counts[0] {
			return a.Counts[0] > b.Counts[0]
		}
		return a.Card < b.Card
	})
	return table, nil
}

// DeckStats classifies every deck and counts rule names per archetype group
// within each cut. Groups are ordered by their first-cut total.
func DeckStats(entries []Entry, cuts []int, classifier *rules.Classifier) (*DeckTable, error) {
	if err := validateCuts(cuts); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("report")

	table := &DeckTable{Cuts: append([]int(nil), cuts...)}
	groups := make(map[string]map[string][]int)
	for _, e := range entries {
		in, ok := cutsFor(e.Standing, cuts)
		if !ok {
			continue
		}
		result := classifier.Classify(e.Deck)
		if !result.Matched {
			table.Unclassified++
			logger.Warn().Str("player", e.Player).Strs("deck", e.Deck.Cards()).Msg("Deck classified as other")
		}

		variants, exists := groups[result.Archetype]
		if !exists {
			variants = make(map[string][]int)
			groups[result.Archetype] = variants
		}
		row, exists := variants[result.Name]
		if !exists {
			row = make([]int, len(cuts))
			variants[result.Name] = row
		}
		for i := range cuts {
			if in[i] {
				row[i]++
			}
		}
	}

	type group struct {
		total DeckRow
		rows  []DeckRow
	}
	ordered := make([]group, 0, len(groups))
	for archetype, variants := range groups {
		g := group{total: DeckRow{Category: archetype, Derivation: TotalDerivation, Counts: make([]int, len(cuts))}}
		for name, row := range variants {
			for i, count := range row {
				g.total.Counts[i] += count
			}
			g.rows = append(g.rows, DeckRow{Category: archetype, Derivation: name, Counts: row})
		}
		sort.Slice(g.rows, func(i, j int) bool {
			a, b := g.rows[i], g.rows[j]
			if a.Counts[0] != b.Counts[0] {
				return a.Counts[0] > b.Counts[0]
			}
			return a.Derivation < b.Derivation
		})
		logger.Debug().Str("archetype", archetype).Ints("total", g.total.Counts).Msg("Summed archetype")
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i].total, ordered[j].total
		if a.Counts[0] != b.Counts[0] {
			return a.Counts[0] > b.Counts[0]
		}
		return a.Category < b.Category
	})

	for _, g := range ordered {
		table.Rows = append(table.Rows, g.total)
		table.Rows = append(table.Rows, g.rows...)
	}
	return table, nil
}
