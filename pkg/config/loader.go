package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the configuration directory
const AppName = "snaparch"

// EnvPrefix prefixes environment overrides: SNAPARCH_TOPDECK_API_KEY sets topdeck.api_key
const EnvPrefix = "SNAPARCH_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the sources Load reads
type LoadOptions struct {
	// ConfigFile is an explicit file layered over the user config
	ConfigFile string
	// SkipUserConfig ignores the file in the XDG config directory
	SkipUserConfig bool
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUserConfig: true})
}

// Load builds the configuration from, in increasing precedence: embedded
// defaults, the user config file, opts.ConfigFile, and SNAPARCH_ variables.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := UserConfigPath()
		if _, err := os.Stat(userPath); err == nil {
			if err := loadFile(k, userPath); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", userPath).Msg("Loaded user config")
		}
	}

	// 3. Explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded config file")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps SNAPARCH_SECTION_SOME_KEY to section.some_key
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// UserConfigPath returns the per-user config file location.
// It respects XDG_CONFIG_HOME if set.
func UserConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}
