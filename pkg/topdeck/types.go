package topdeck

import (
	"sort"

	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/deck"
	"github.com/arthur-debert/snaparch/pkg/errors"
)

// Tournament is the subset of a TopDeck tournament payload used for reports
type Tournament struct {
	TID       string     `json:"TID"`
	Name      string     `json:"name,omitempty"`
	Standings []Standing `json:"standings"`
}

// Standing is one player's final placement and deck
type Standing struct {
	Name     string     `json:"name"`
	ID       string     `json:"id"`
	Standing int        `json:"standing"`
	Decklist string     `json:"decklist"` // exported deck code
	Deck     DeckObject `json:"deckObj"`
}

// DeckObject is the structured deck TopDeck attaches to a standing.
// Cards is keyed by display name, e.g. "Kraven": {"id": "#", "count": 1}.
type DeckObject struct {
	Cards map[string]any `json:"Decklist"`
}

// CardNames returns the display names of the structured deck, sorted
func (s Standing) CardNames() []string {
	names := make([]string, 0, len(s.Deck.Cards))
	for name := range s.Deck.Cards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CardIdentifiers returns the standing's deck as a set of card identifiers.
// The structured card map is preferred; the deck code is decoded otherwise.
func (s Standing) CardIdentifiers(n *cards.Normalizer) (deck.Deck, error) {
	if len(s.Deck.Cards) > 0 {
		return deck.New(n.NormalizeDeck(s.CardNames())...), nil
	}
	if s.Decklist != "" {
		d, err := deck.Decode(s.Decklist)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "deck of %s", s.Name).
				WithDetail("player", s.Name)
		}
		return d, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "standing for %s has no deck", s.Name).
		WithDetail("player", s.Name)
}
