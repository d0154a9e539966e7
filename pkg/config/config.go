package config

import (
	"time"

	"github.com/arthur-debert/snaparch/pkg/errors"
)

// Override pins a display name to a published card identifier
type Override struct {
	Name string `koanf:"name"`
	ID   string `koanf:"id"`
}

// Rules holds rule source configuration
type Rules struct {
	// Path to a JSON, YAML or TOML rule document; empty uses the embedded catalog
	Path string `koanf:"path"`
	// Overrides are kept as a list because card names may contain the key delimiter
	Overrides []Override `koanf:"overrides"`
}

// Fallback holds the classification used when no rule matches
type Fallback struct {
	Name      string `koanf:"name"`
	Archetype string `koanf:"archetype"`
}

// Report holds tournament report configuration
type Report struct {
	Cuts      []int  `koanf:"cuts"`
	OutputDir string `koanf:"output_dir"`
}

// TopDeck holds tournament API configuration
type TopDeck struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
	Retries int           `koanf:"retries"`
}

// Output holds presentation configuration
type Output struct {
	Format string `koanf:"format"`
}

// Config is the main configuration structure
type Config struct {
	Rules    Rules    `koanf:"rules"`
	Fallback Fallback `koanf:"fallback"`
	Report   Report   `koanf:"report"`
	TopDeck  TopDeck  `koanf:"topdeck"`
	Output   Output   `koanf:"output"`
}

// OverrideTable returns the configured overrides as a name -> identifier map
func (c *Config) OverrideTable() map[string]string {
	table := make(map[string]string, len(c.Rules.Overrides))
	for _, o := range c.Rules.Overrides {
		table[o.Name] = o.ID
	}
	return table
}

var validFormats = map[string]bool{"auto": true, "term": true, "text": true, "json": true}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Fallback.Name == "" || c.Fallback.Archetype == "" {
		return errors.New(errors.ErrConfigValid, "fallback name and archetype must not be empty")
	}
	if len(c.Report.Cuts) == 0 {
		return errors.New(errors.ErrConfigValid, "report.cuts must list at least one cut")
	}
	for _, cut := range c.Report.Cuts {
		if cut <= 0 {
			return errors.Newf(errors.ErrConfigValid, "report.cuts must be positive, got %d", cut).
				WithDetail("cut", cut)
		}
	}
	for i, o := range c.Rules.Overrides {
		if o.Name == "" || o.ID == "" {
			return errors.Newf(errors.ErrConfigValid, "rules.overrides[%d] needs both name and id", i)
		}
	}
	if c.TopDeck.Timeout <= 0 {
		return errors.New(errors.ErrConfigValid, "topdeck.timeout must be positive")
	}
	if c.TopDeck.Retries < 0 {
		return errors.New(errors.ErrConfigValid, "topdeck.retries must not be negative")
	}
	if !validFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format)
	}
	return nil
}
