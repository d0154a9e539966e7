// Package topdeck is a small client for the TopDeck.gg tournament API.
//
// Only the standings endpoint is used: each standing carries the player's
// placement and deck, either as a structured card map or as an exported deck
// code. Standing.CardIdentifiers turns either form into a deck.Deck.
package topdeck
