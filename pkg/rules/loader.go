package rules

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/rules.json
var defaultRules []byte

// Format is the encoding of a rule document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the document format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrRulesLoad, "unsupported rule file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Default builds the Catalog shipped with the binary
func Default(n *cards.Normalizer) (*Catalog, error) {
	return Load(defaultRules, FormatJSON, n)
}

// LoadFile reads a rule document from disk and builds a Catalog
func LoadFile(path string, n *cards.Normalizer) (*Catalog, error) {
	logger := logging.GetLogger("rules.loader")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to read rules from %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Str("format", string(format)).Msg("Loading rules")

	catalog, err := Load(data, format, n)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to load rules from %s", path).
			WithDetail("path", path)
	}
	return catalog, nil
}

// Load parses a rule document and builds a Catalog
func Load(data []byte, format Format, n *cards.Normalizer) (*Catalog, error) {
	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return NewCatalog(doc.Definitions, n)
}

// Parse decodes a rule document without normalizing it
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, errors.Newf(errors.ErrRulesLoad, "unsupported rule format %q", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesParse, "failed to parse %s rules", format)
	}
	return &doc, nil
}
