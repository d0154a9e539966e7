package commands

import (
	"strings"

	"github.com/arthur-debert/snaparch/pkg/deck"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/ui/views"
)

// Normalize returns the identifier of every display name, in input order
func Normalize(env *Env, names []string) (*views.Normalization, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one card name is required")
	}
	result := &views.Normalization{Cards: make([]views.NamedCard, 0, len(names))}
	for _, name := range names {
		result.Cards = append(result.Cards, views.NamedCard{Name: name, ID: env.Normalizer.Normalize(name)})
	}
	return result, nil
}

// Decode returns the sorted identifiers of an exported deck code
func Decode(code string) (*views.DeckListing, error) {
	d, err := deck.Decode(code)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("commands")
	logger.Debug().Int("cards", d.Len()).Msg("Decoded deck code")
	return &views.DeckListing{Cards: d.Cards()}, nil
}

// EncodeOptions holds the inputs of Encode
type EncodeOptions struct {
	// IDs are card identifiers written as is
	IDs []string
	// Names are display names normalized before encoding
	Names []string
	// Title, when set, is written as a comment line above the data
	Title string
}

// Encode builds a deck code from identifiers and display names
func Encode(env *Env, opts EncodeOptions) (*views.DeckCode, error) {
	d := deck.New(opts.IDs...)
	d.Add(env.Normalizer.NormalizeDeck(opts.Names)...)
	if d.Len() == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one card is required")
	}
	var comments []string
	if title := strings.TrimSpace(opts.Title); title != "" {
		comments = append(comments, title)
	}
	return &views.DeckCode{Code: deck.Encode(d, comments...), Cards: d.Cards()}, nil
}
