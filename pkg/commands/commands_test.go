// Test Type: Unit Test
// Description: Tests for the commands package - command implementations over the default catalog

package commands_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/snaparch/pkg/commands"
	"github.com/arthur-debert/snaparch/pkg/config"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T, mutate func(cfg *config.Config)) *commands.Env {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}
	env, err := commands.NewEnv(cfg, "")
	require.NoError(t, err)
	return env
}

func TestNewEnv(t *testing.T) {
	t.Run("default_catalog", func(t *testing.T) {
		env := newEnv(t, nil)
		assert.Greater(t, env.Catalog.Len(), 0)
		assert.Equal(t, "Other", env.Classifier.Fallback().Archetype)
	})

	t.Run("configured_overrides_and_fallback", func(t *testing.T) {
		env := newEnv(t, func(cfg *config.Config) {
			cfg.Rules.Overrides = []config.Override{{Name: "Hela", ID: "Hela99"}}
			cfg.Fallback = config.Fallback{Name: "Rogue", Archetype: "Rogue"}
		})
		assert.Equal(t, "Hela99", env.Normalizer.Normalize("Hela"))
		assert.Equal(t, "MrNgtvA", env.Normalizer.Normalize("Mister Negative"))
		assert.Equal(t, "Rogue", env.Classifier.Fallback().Name)
	})

	t.Run("rules_path_argument_wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("definitions:\n  - name: Only Hela\n    core_cards: [Hela]\n"), 0644))

		cfg, err := config.Default()
		require.NoError(t, err)
		cfg.Rules.Path = filepath.Join(t.TempDir(), "missing.json")

		env, err := commands.NewEnv(cfg, path)
		require.NoError(t, err)
		assert.Equal(t, 1, env.Catalog.Len())
	})

	t.Run("missing_rules_file", func(t *testing.T) {
		cfg, err := config.Default()
		require.NoError(t, err)
		_, err = commands.NewEnv(cfg, filepath.Join(t.TempDir(), "missing.json"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesLoad))
	})
}

func TestNormalize(t *testing.T) {
	env := newEnv(t, nil)
	result, err := commands.Normalize(env, []string{"Spider-Man", "M.O.D.O.K."})
	require.NoError(t, err)
	assert.Equal(t, "SpdrMn9", result.Cards[0].ID)
	assert.Equal(t, "Mdk5", result.Cards[1].ID)

	_, err = commands.Normalize(env, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDecodeEncode(t *testing.T) {
	env := newEnv(t, nil)

	listing, err := commands.Decode("# My deck\nU3Bkck1uOSxIZDQ=")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hd4", "SpdrMn9"}, listing.Cards)

	code, err := commands.Encode(env, commands.EncodeOptions{IDs: []string{"Hd4"}, Names: []string{"Spider-Man"}, Title: "My deck"})
	require.NoError(t, err)
	assert.Equal(t, "# My deck\nSGQ0LFNwZHJNbjk=\n", code.Code)

	roundTrip, err := commands.Decode(code.Code)
	require.NoError(t, err)
	assert.Equal(t, code.Cards, roundTrip.Cards)

	multi, err := commands.Encode(env, commands.EncodeOptions{Names: []string{"Hela", "The"}, Title: "My deck\nby me"})
	require.NoError(t, err)
	assert.Equal(t, "# My deck\n# by me\nSGw0\n", multi.Code)
	decoded, err := commands.Decode(multi.Code)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hl4"}, decoded.Cards)

	_, err = commands.Encode(env, commands.EncodeOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = commands.Decode("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeckCodeFormat))
}

func TestClassify(t *testing.T) {
	env := newEnv(t, nil)

	t.Run("by_names", func(t *testing.T) {
		result, err := commands.Classify(env, commands.ClassifyOptions{Cards: []string{"Agatha Harkness", "Hela"}})
		require.NoError(t, err)
		assert.Equal(t, "Agatha Hela", result.Name)
		assert.Equal(t, "Agatha", result.Archetype)
		assert.True(t, result.Matched)
	})

	t.Run("by_code", func(t *testing.T) {
		// Hl4,Hl4
		result, err := commands.Classify(env, commands.ClassifyOptions{Code: "SGw0LEhsNA=="})
		require.NoError(t, err)
		assert.Equal(t, "Non-Agatha Hela", result.Name)
		assert.Equal(t, []string{"Hl4"}, result.Cards)
	})

	t.Run("fallback", func(t *testing.T) {
		result, err := commands.Classify(env, commands.ClassifyOptions{Cards: []string{"Odin"}})
		require.NoError(t, err)
		assert.False(t, result.Matched)
		assert.Equal(t, "Miscellaneous / Other", result.Name)
	})

	t.Run("names_without_identifier_are_dropped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"definitions:\n  - name: Broken\n    core_cards: [42]\n  - name: Only Hela\n    core_cards: [Hela]\n"), 0644))
		cfg, err := config.Default()
		require.NoError(t, err)
		custom, err := commands.NewEnv(cfg, path)
		require.NoError(t, err)

		result, err := commands.Classify(custom, commands.ClassifyOptions{Cards: []string{"The", "Hela"}})
		require.NoError(t, err)
		assert.Equal(t, "Only Hela", result.Name)
		assert.Equal(t, []string{"Hl4"}, result.Cards)
	})

	t.Run("invalid_input", func(t *testing.T) {
		_, err := commands.Classify(env, commands.ClassifyOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = commands.Classify(env, commands.ClassifyOptions{Code: "x", Cards: []string{"Hela"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = commands.Classify(env, commands.ClassifyOptions{Code: "//4="})
		assert.True(t, errors.IsErrorCode(err, errors.ErrDeckCodeDecode))
	})
}

func TestExplainAndArchetypes(t *testing.T) {
	env := newEnv(t, nil)

	all, err := commands.Explain(env, nil)
	require.NoError(t, err)
	assert.Len(t, all.Rules, env.Catalog.Len())
	assert.Contains(t, all.Markdown, "# Archetype rules")

	one, err := commands.Explain(env, []string{"Non-Agatha Hela"})
	require.NoError(t, err)
	require.Len(t, one.Rules, 1)
	assert.Equal(t, "Must contain ALL of: [Hela]; Must NOT contain: [Agatha Harkness]", one.Rules[0].Explanation)

	_, err = commands.Explain(env, []string{"Nope"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	archetypes := commands.Archetypes(env)
	assert.Equal(t, []string{"Agatha", "Hela", "Thors"}, archetypes.Archetypes[:3])
}

func TestReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"TID": "gg-1", "name": "Gauntlet", "standings": [
			{"name": "alice", "standing": 1, "deckObj": {"Decklist": {"Agatha Harkness": {}, "Hela": {}}}},
			{"name": "bob", "standing": 2, "decklist": "SGw0LEhsNA=="}
		]}`))
	}))
	defer server.Close()

	outputDir := t.TempDir()
	env := newEnv(t, func(cfg *config.Config) {
		cfg.TopDeck.BaseURL = server.URL
		cfg.TopDeck.APIKey = "secret"
		cfg.TopDeck.Retries = 0
		cfg.Report.OutputDir = outputDir
	})

	result, err := commands.Report(context.Background(), env, commands.ReportOptions{TID: "gg-1", Cuts: []int{8, 1}})
	require.NoError(t, err)
	assert.Equal(t, "Gauntlet", result.Name)
	assert.Equal(t, 2, result.Summary.Players)
	assert.FileExists(t, filepath.Join(outputDir, "gg-1", report.CardsFile))
	assert.FileExists(t, filepath.Join(outputDir, "gg-1", report.DecksFile))

	t.Run("missing_api_key", func(t *testing.T) {
		env := newEnv(t, nil)
		_, err := commands.Report(context.Background(), env, commands.ReportOptions{TID: "gg-1"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
