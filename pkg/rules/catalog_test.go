// Test Type: Unit Test
// Description: Tests for catalog construction from rule records

package rules_test

import (
	"testing"

	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	n := cards.NewDefaultNormalizer()

	records := []rules.Record{
		{Name: "Agatha Hela", Archetype: "Agatha", CoreCards: []interface{}{"Agatha Harkness", "Hela", "Hela"}},
		{Name: "Agatha", CoreCards: []interface{}{"Agatha Harkness"}},
		{Name: "Hela", CoreCards: []interface{}{"Hela"}, BannedCards: []interface{}{"Agatha Harkness"}},
	}

	catalog, err := rules.NewCatalog(records, n)
	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())

	got := catalog.Rules()
	assert.Equal(t, []string{"Agatha Hela", "Agatha", "Hela"}, []string{got[0].Name, got[1].Name, got[2].Name})

	t.Run("lists_are_normalized_once_and_deduplicated", func(t *testing.T) {
		assert.Equal(t, []string{"AgthHrknssE", "Hl4"}, got[0].CoreCards)
		assert.Nil(t, got[0].AtLeastOneOf)
		assert.Equal(t, []string{"AgthHrknssE"}, got[2].BannedCards)
	})

	t.Run("archetype_defaults_to_name", func(t *testing.T) {
		assert.Equal(t, "Agatha", got[0].Archetype)
		assert.Equal(t, "Agatha", got[1].Archetype)
		assert.Equal(t, "Hela", got[2].Archetype)
	})

	t.Run("archetypes_in_first_seen_order", func(t *testing.T) {
		assert.Equal(t, []string{"Agatha", "Hela"}, catalog.Archetypes())
	})

	t.Run("find", func(t *testing.T) {
		rule, ok := catalog.Find("Hela")
		require.True(t, ok)
		assert.Equal(t, []string{"Hl4"}, rule.CoreCards)

		_, ok = catalog.Find("Missing")
		assert.False(t, ok)
	})

	t.Run("rules_returns_a_copy", func(t *testing.T) {
		mutated := catalog.Rules()
		mutated[0].Name = "changed"
		assert.Equal(t, "Agatha Hela", catalog.Rules()[0].Name)
	})

	t.Run("non_string_entries_become_invalid", func(t *testing.T) {
		c, err := rules.NewCatalog([]rules.Record{
			{Name: "r", CoreCards: []interface{}{"Hela", 7, nil}},
		}, n)
		require.NoError(t, err)
		assert.Equal(t, []string{"Hl4", cards.Invalid}, c.Rules()[0].CoreCards)
	})
}

func TestNewCatalog_EmptyName(t *testing.T) {
	_, err := rules.NewCatalog([]rules.Record{{Name: "ok"}, {Name: ""}}, cards.NewDefaultNormalizer())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRulesInvalid))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["index"])
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := rules.Default(cards.NewDefaultNormalizer())
	require.NoError(t, err)

	assert.Greater(t, catalog.Len(), 10)
	archetypes := catalog.Archetypes()
	assert.Contains(t, archetypes, "Agatha")
	assert.Contains(t, archetypes, "Cerebro")
	assert.NotContains(t, archetypes, rules.DefaultFallbackArchetype)
}
