// Package deck holds the deck set type and the game's deck-code text format.
//
// A deck code, as copied from the game client, looks like:
//
//	# (1) Hela
//	# (6) Agatha Harkness
//	#
//	SGw0LEFndGhIcmtuc3NFLFJkU2hmdDg=
//	#
//	# To use this deck, copy it to your clipboard and paste it from the deck editing menu.
//
// Comment and blank lines are ignored; the single remaining line is the
// base64 encoding of the comma-joined card identifiers.
package deck

import (
	"sort"
)

// Deck is a set of card identifiers. Copies of a card collapse to one entry.
type Deck map[string]struct{}

// New creates a deck holding the given identifiers
func New(ids ...string) Deck {
	d := make(Deck, len(ids))
	for _, id := range ids {
		d[id] = struct{}{}
	}
	return d
}

// Add inserts identifiers into the deck
func (d Deck) Add(ids ...string) {
	for _, id := range ids {
		d[id] = struct{}{}
	}
}

// Has reports whether the deck contains id
func (d Deck) Has(id string) bool {
	_, ok := d[id]
	return ok
}

// Len returns the number of distinct cards
func (d Deck) Len() int {
	return len(d)
}

// Cards returns the identifiers in sorted order
func (d Deck) Cards() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ContainsAll reports whether every id is in the deck. An empty list is
// always contained.
func (d Deck) ContainsAll(ids []string) bool {
	for _, id := range ids {
		if !d.Has(id) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one id is in the deck
func (d Deck) ContainsAny(ids []string) bool {
	for _, id := range ids {
		if d.Has(id) {
			return true
		}
	}
	return false
}
