package snaparch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Classify Marvel Snap decks into archetypes"
	MsgNormalizeShort  = "Print the card identifier of each display name"
	MsgDecodeShort     = "Print the card identifiers in a deck code"
	MsgEncodeShort     = "Build a deck code from cards"
	MsgClassifyShort   = "Print the rule name and archetype of a deck"
	MsgExplainShort    = "Explain the archetype rules"
	MsgExplainLong     = "Explain describes the rules in the order they are checked. With rule names as arguments only those rules are shown."
	MsgArchetypesShort = "List the archetype groups of the rule catalog"
	MsgReportShort     = "Write card and archetype reports for a tournament"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file (TOML or YAML) layered over the user config"
	MsgFlagRules     = "Rule file (JSON, YAML or TOML) used instead of the configured rules"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagCards     = "Comma separated card display names to classify instead of a deck code"
	MsgFlagNames     = "Treat arguments as display names and normalize them"
	MsgFlagTitle     = "Comment line written above the deck code"
	MsgFlagOutputDir = "Directory the reports are written under"
	MsgFlagCuts      = "Top cuts to count, widest first"
	MsgFlagLimit     = "Rows shown per summary table (0 shows all)"
	MsgFlagManDir    = "Write one man page per command into this directory instead of stdout"

	// Output
	MsgVersionFormat = "snaparch version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrReadStdin  = "failed to read deck code from standard input"
	MsgErrEmptyStdin = "no deck code given"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/classify-long.txt
	msgClassifyLongRaw string
	MsgClassifyLong    = strings.TrimSpace(msgClassifyLongRaw)

	//go:embed msgs/classify-example.txt
	msgClassifyExampleRaw string
	MsgClassifyExample    = strings.TrimRight(msgClassifyExampleRaw, "\n")

	//go:embed msgs/report-long.txt
	msgReportLongRaw string
	MsgReportLong    = strings.TrimSpace(msgReportLongRaw)

	//go:embed msgs/report-example.txt
	msgReportExampleRaw string
	MsgReportExample    = strings.TrimRight(msgReportExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
