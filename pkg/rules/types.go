package rules

// Record is a rule as written in a rule document. Card lists hold display
// names; entries that are not strings are kept so they can be reported.
type Record struct {
	Name         string        `json:"name" yaml:"name" toml:"name"`
	Archetype    string        `json:"archetype,omitempty" yaml:"archetype,omitempty" toml:"archetype,omitempty"`
	CoreCards    []interface{} `json:"core_cards,omitempty" yaml:"core_cards,omitempty" toml:"core_cards,omitempty"`
	AtLeastOneOf []interface{} `json:"at_least_one_of,omitempty" yaml:"at_least_one_of,omitempty" toml:"at_least_one_of,omitempty"`
	BannedCards  []interface{} `json:"banned_cards,omitempty" yaml:"banned_cards,omitempty" toml:"banned_cards,omitempty"`
}

// Document is the top level of a rule document
type Document struct {
	Definitions []Record `json:"definitions" yaml:"definitions" toml:"definitions"`
}

// Rule is a Record with its card lists normalized to identifiers
type Rule struct {
	// Name identifies the rule and is the first half of a classification
	Name string

	// Archetype groups related rules; it defaults to Name
	Archetype string

	CoreCards    []string
	AtLeastOneOf []string
	BannedCards  []string

	// Source is the record the rule was built from
	Source Record
}

// Result is the outcome of classifying a deck
type Result struct {
	Name      string `json:"name"`
	Archetype string `json:"archetype"`
	// Matched is false when no rule matched and the fallback was used
	Matched bool `json:"matched"`
}
