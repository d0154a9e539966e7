package rules

import (
	"github.com/arthur-debert/snaparch/pkg/deck"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/rs/zerolog"
)

// Fallback classification for decks no rule matches
const (
	DefaultFallbackName      = "Miscellaneous / Other"
	DefaultFallbackArchetype = "Other"
)

// Classifier evaluates decks against a Catalog
type Classifier struct {
	catalog  *Catalog
	fallback Result
	logger   zerolog.Logger
}

// Option configures a Classifier
type Option func(*Classifier)

// WithFallback replaces the result returned when no rule matches
func WithFallback(name, archetype string) Option {
	return func(c *Classifier) {
		c.fallback = Result{Name: name, Archetype: archetype}
	}
}

// NewClassifier creates a Classifier over catalog
func NewClassifier(catalog *Catalog, opts ...Option) *Classifier {
	c := &Classifier{
		catalog: catalog,
		fallback: Result{
			Name:      DefaultFallbackName,
			Archetype: DefaultFallbackArchetype,
		},
		logger: logging.GetLogger("rules.classifier"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog the classifier evaluates
func (c *Classifier) Catalog() *Catalog {
	return c.catalog
}

// Fallback returns the result used when no rule matches
func (c *Classifier) Fallback() Result {
	return c.fallback
}

// Classify returns the first rule matching d, or the fallback result
func (c *Classifier) Classify(d deck.Deck) Result {
	for _, rule := range c.catalog.rules {
		if Matches(rule, d) {
			c.logger.Trace().
				Str("rule", rule.Name).
				Str("archetype", rule.Archetype).
				Msg("Deck matched rule")
			return Result{Name: rule.Name, Archetype: rule.Archetype, Matched: true}
		}
	}

	c.logger.Debug().Strs("deck", d.Cards()).Msg("Deck matched no rule")
	return c.fallback
}

// ClassifyCode decodes a deck code and classifies the deck. Decoding errors
// are returned as-is; a malformed code is never classified.
func (c *Classifier) ClassifyCode(code string) (Result, deck.Deck, error) {
	d, err := deck.Decode(code)
	if err != nil {
		return Result{}, nil, err
	}
	return c.Classify(d), d, nil
}

// Matches reports whether d satisfies every constraint of rule
func Matches(rule Rule, d deck.Deck) bool {
	if !d.ContainsAll(rule.CoreCards) {
		return false
	}
	if len(rule.AtLeastOneOf) > 0 && !d.ContainsAny(rule.AtLeastOneOf) {
		return false
	}
	return !d.ContainsAny(rule.BannedCards)
}
