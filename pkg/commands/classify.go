package commands

import (
	"github.com/arthur-debert/snaparch/pkg/deck"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/ui/views"
)

// ClassifyOptions selects the deck to classify: a deck code or display names
type ClassifyOptions struct {
	Code  string
	Cards []string
}

// Classify returns the rule name and archetype group of a deck
func Classify(env *Env, opts ClassifyOptions) (*views.Classification, error) {
	logger := logging.GetLogger("commands")

	var d deck.Deck
	switch {
	case len(opts.Cards) > 0 && opts.Code != "":
		return nil, errors.New(errors.ErrInvalidInput, "give either a deck code or card names, not both")
	case len(opts.Cards) > 0:
		d = deck.New(env.Normalizer.NormalizeDeck(opts.Cards)...)
	case opts.Code != "":
		var err error
		if d, err = deck.Decode(opts.Code); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.ErrInvalidInput, "a deck code or card names are required")
	}

	result := env.Classifier.Classify(d)
	logger.Info().
		Str("name", result.Name).
		Str("archetype", result.Archetype).
		Bool("matched", result.Matched).
		Msg("Classified deck")
	return &views.Classification{Result: result, Cards: d.Cards()}, nil
}
