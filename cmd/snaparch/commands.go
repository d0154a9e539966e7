package snaparch

import (
	"fmt"

	"github.com/arthur-debert/snaparch/internal/version"
	"github.com/arthur-debert/snaparch/pkg/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize NAME...",
		Short:   MsgNormalizeShort,
		GroupID: "decks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			result, err := commands.Normalize(env, args)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode [CODE|-]",
		Short:   MsgDecodeShort,
		GroupID: "decks",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(cmd, args)
			if err != nil {
				return err
			}
			result, err := commands.Decode(code)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		names bool
		title string
	)
	cmd := &cobra.Command{
		Use:     "encode ID...",
		Short:   MsgEncodeShort,
		GroupID: "decks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			opts := commands.EncodeOptions{IDs: args, Title: title}
			if names {
				opts = commands.EncodeOptions{Names: args, Title: title}
			}
			result, err := commands.Encode(env, opts)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, MsgFlagNames)
	cmd.Flags().StringVar(&title, "title", "", MsgFlagTitle)
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	var cardNames []string
	cmd := &cobra.Command{
		Use:     "classify [CODE|-]",
		Short:   MsgClassifyShort,
		Long:    MsgClassifyLong,
		Example: MsgClassifyExample,
		GroupID: "decks",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			opts := commands.ClassifyOptions{Cards: cardNames}
			if len(cardNames) == 0 || len(args) > 0 {
				if opts.Code, err = readCode(cmd, args); err != nil {
					return err
				}
			}
			result, err := commands.Classify(env, opts)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringSliceVar(&cardNames, "cards", nil, MsgFlagCards)
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var (
		outputDir string
		cuts      []int
		limit     int
	)
	cmd := &cobra.Command{
		Use:     "report TID",
		Short:   MsgReportShort,
		Long:    MsgReportLong,
		Example: MsgReportExample,
		GroupID: "decks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			result, err := commands.Report(cmd.Context(), env, commands.ReportOptions{
				TID:       args[0],
				OutputDir: outputDir,
				Cuts:      cuts,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", "", MsgFlagOutputDir)
	cmd.Flags().IntSliceVar(&cuts, "cuts", nil, MsgFlagCuts)
	cmd.Flags().IntVar(&limit, "limit", 10, MsgFlagLimit)
	return cmd
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "explain [RULE...]",
		Short:   MsgExplainShort,
		Long:    MsgExplainLong,
		GroupID: "rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			result, err := commands.Explain(env, args)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newArchetypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "archetypes",
		Short:   MsgArchetypesShort,
		GroupID: "rules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			return a.render(cmd, commands.Archetypes(env))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SNAPARCH",
				Section: "1",
				Source:  "snaparch " + version.Version,
				Manual:  "snaparch manual",
			}
			if dir == "" {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			return a.message(cmd, fmt.Sprintf(MsgManWritten, dir))
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	return cmd
}
