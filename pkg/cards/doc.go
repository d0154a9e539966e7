// Package cards turns card display names into the short identifiers the game
// client uses inside deck codes.
//
// An identifier is the card's consonant skeleton followed by a hexadecimal
// letter count:
//
//	Spider-Man                  -> SpdrMn9
//	The Hood                    -> Hd4
//	Invisible Woman First Steps -> InvsblWmnFrstStps18
//
// Derivation:
//
//   - Any leading or trailing run of the characters T, h and e is stripped,
//     then surrounding spaces. This is a character-class strip, so a name such
//     as "Hela" keeps its letters but "Blade" loses its final "e".
//   - The first remaining character is always kept.
//   - Every later character that is not ASCII punctuation or whitespace adds
//     one to the count and is kept unless it is a lowercase vowel (a, e, i, o,
//     u, y). Uppercase vowels are kept.
//
// Some published identifiers cannot be derived this way (M.O.D.O.K. is Mdk5,
// not MODOK5). Those live in an override table handed to NewNormalizer; every
// derived identifier is memoized in the same table.
package cards
