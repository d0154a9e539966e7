// Package rules classifies decks into archetypes using an ordered rule list.
//
// # Rule Shape
//
// Each rule names up to three card lists:
//
//   - core_cards: every card must be in the deck
//   - at_least_one_of: at least one card must be in the deck (ignored when empty)
//   - banned_cards: no card may be in the deck
//
// A rule with no lists matches every deck.
//
// # Rule Priority
//
// Rules are evaluated in the order they are listed. The first matching rule
// wins, so a narrow rule must be listed before the broader rule it would
// otherwise be swallowed by:
//
//	{"definitions": [
//	  {"name": "Agatha Hela", "archetype": "Agatha", "core_cards": ["Agatha Harkness", "Hela"]},
//	  {"name": "Agatha", "core_cards": ["Agatha Harkness"]},
//	  {"name": "Non-Agatha Hela", "archetype": "Hela", "core_cards": ["Hela"], "banned_cards": ["Agatha Harkness"]}
//	]}
//
// A deck that matches no rule is classified with the fallback result
// ("Miscellaneous / Other", "Other").
//
// # Rule Sources
//
// Rule documents may be JSON, YAML or TOML; the format follows the file
// extension. Card lists hold display names, which are normalized to card
// identifiers once, when the Catalog is built.
package rules
