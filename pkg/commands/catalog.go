package commands

import (
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/rules"
	"github.com/arthur-debert/snaparch/pkg/ui/views"
)

// Explain describes the named rules, or the whole catalog when names is empty
func Explain(env *Env, names []string) (*views.Explanation, error) {
	if len(names) == 0 {
		return views.NewExplanation(env.Catalog.Rules()), nil
	}
	selected := make([]rules.Rule, 0, len(names))
	for _, name := range names {
		rule, ok := env.Catalog.Find(name)
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound, "no rule named %q", name).WithDetail("rule", name)
		}
		selected = append(selected, rule)
	}
	return views.NewExplanation(selected), nil
}

// Archetypes lists the distinct archetype groups of the catalog
func Archetypes(env *Env) *views.Archetypes {
	return &views.Archetypes{Archetypes: env.Catalog.Archetypes()}
}
