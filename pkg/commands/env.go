package commands

import (
	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/config"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/rules"
)

// Env is everything a command needs to work on decks
type Env struct {
	Config     *config.Config
	Normalizer *cards.Normalizer
	Catalog    *rules.Catalog
	Classifier *rules.Classifier
}

// NewEnv builds the normalizer, catalog and classifier described by cfg.
// A non-empty rulesPath takes precedence over cfg.Rules.Path; with neither
// the embedded catalog is used.
func NewEnv(cfg *config.Config, rulesPath string) (*Env, error) {
	logger := logging.GetLogger("commands")

	normalizer := cards.NewNormalizer(cards.DefaultOverrides(), cfg.OverrideTable())

	if rulesPath == "" {
		rulesPath = cfg.Rules.Path
	}
	var (
		catalog *rules.Catalog
		err     error
	)
	if rulesPath != "" {
		catalog, err = rules.LoadFile(rulesPath, normalizer)
	} else {
		catalog, err = rules.Default(normalizer)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("rules", rulesPath).
		Int("count", catalog.Len()).
		Msg("Rule catalog ready")

	classifier := rules.NewClassifier(catalog, rules.WithFallback(cfg.Fallback.Name, cfg.Fallback.Archetype))
	return &Env{
		Config:     cfg,
		Normalizer: normalizer,
		Catalog:    catalog,
		Classifier: classifier,
	}, nil
}
