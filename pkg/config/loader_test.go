// Test Type: Unit Test
// Description: Tests for the config package - configuration layering and environment overrides

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	return configHome
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Rules.Path)
	assert.Empty(t, cfg.Rules.Overrides)
	assert.Equal(t, "Miscellaneous / Other", cfg.Fallback.Name)
	assert.Equal(t, "Other", cfg.Fallback.Archetype)
	assert.Equal(t, []int{1024, 64, 32, 16}, cfg.Report.Cuts)
	assert.Equal(t, "output", cfg.Report.OutputDir)
	assert.Equal(t, "https://topdeck.gg/api", cfg.TopDeck.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.TopDeck.Timeout)
	assert.Equal(t, 3, cfg.TopDeck.Retries)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoad_UserConfig(t *testing.T) {
	configHome := isolate(t)
	dir := filepath.Join(configHome, "snaparch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[rules]
path = "/srv/rules.yaml"

[[rules.overrides]]
name = "M.O.D.O.K."
id = "Mdk5"

[report]
cuts = [256, 8]
`), 0644))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/srv/rules.yaml", cfg.Rules.Path)
	assert.Equal(t, map[string]string{"M.O.D.O.K.": "Mdk5"}, cfg.OverrideTable())
	assert.Equal(t, []int{256, 8}, cfg.Report.Cuts)
	// Untouched keys keep their defaults
	assert.Equal(t, "Other", cfg.Fallback.Archetype)

	t.Run("skip_user_config", func(t *testing.T) {
		cfg, err := Load(LoadOptions{SkipUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Rules.Path)
	})
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snaparch.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fallback:\n  name: Unknown\n  archetype: Unknown\ntopdeck:\n  timeout: 5s\n"), 0644))

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "Unknown", cfg.Fallback.Name)
		assert.Equal(t, 5*time.Second, cfg.TopDeck.Timeout)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snaparch.ini")
		require.NoError(t, os.WriteFile(path, []byte("x=1"), 0644))
		_, err := Load(LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snaparch.toml")
		require.NoError(t, os.WriteFile(path, []byte("[report\ncuts = "), 0644))
		_, err := Load(LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snaparch.toml")
		require.NoError(t, os.WriteFile(path, []byte("[report]\ncuts = [64, 0]\n"), 0644))
		_, err := Load(LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("SNAPARCH_TOPDECK_API_KEY", "secret")
	t.Setenv("SNAPARCH_FALLBACK_NAME", "Rogue")
	t.Setenv("SNAPARCH_OUTPUT_FORMAT", "json")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.TopDeck.APIKey)
	assert.Equal(t, "Rogue", cfg.Fallback.Name)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "topdeck.api_key", envKey("SNAPARCH_TOPDECK_API_KEY"))
	assert.Equal(t, "report.output_dir", envKey("SNAPARCH_REPORT_OUTPUT_DIR"))
	assert.Equal(t, "rules.path", envKey("SNAPARCH_RULES_PATH"))
}

func TestUserConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "snaparch", "config.toml"), UserConfigPath())
}
