package snaparch

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/snaparch/pkg/cobrax/topics"
	"github.com/arthur-debert/snaparch/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

const topicWidth = 100

// setupHelpTopics installs `snaparch help <topic>`. Markdown is styled only
// when stdout is a terminal.
func setupHelpTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer(topicWidth)
	}

	if _, err := topics.InitializeWithOptions(rootCmd, source, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	rootCmd.SetHelpCommandGroupID("misc")
}
