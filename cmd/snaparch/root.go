package snaparch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/snaparch/internal/version"
	"github.com/arthur-debert/snaparch/pkg/commands"
	"github.com/arthur-debert/snaparch/pkg/config"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the global flags and what is built from them. Configuration and
// the rule catalog are loaded on first use so that commands like version
// never touch the filesystem.
type app struct {
	verbosity  int
	configFile string
	rulesFile  string
	format     string

	cfg *config.Config
	env *commands.Env
}

func (a *app) config() (*config.Config, error) {
	if a.cfg == nil {
		cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
		if err != nil {
			return nil, err
		}
		a.cfg = cfg
	}
	return a.cfg, nil
}

func (a *app) environment() (*commands.Env, error) {
	if a.env == nil {
		cfg, err := a.config()
		if err != nil {
			return nil, err
		}
		env, err := commands.NewEnv(cfg, a.rulesFile)
		if err != nil {
			return nil, err
		}
		a.env = env
	}
	return a.env, nil
}

// render writes result to the command's output in the selected format
func (a *app) render(cmd *cobra.Command, result interface{}) error {
	renderer, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// message writes a one-line status message in the selected format
func (a *app) message(cmd *cobra.Command, msg string) error {
	renderer, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderMessage(msg)
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	name := a.format
	if name == "" {
		cfg, err := a.config()
		if err != nil {
			return nil, err
		}
		name = cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// renderError reports err on w in the selected format. Configuration is not
// loaded here; when it failed or was never read the format falls back to auto.
func (a *app) renderError(w io.Writer, err error) {
	name := a.format
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}
	format, perr := ui.ParseFormat(name)
	if perr != nil {
		format = ui.FormatAuto
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr == nil {
		rerr = renderer.RenderError(err)
	}
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// Execute runs the command line in args with ctx and reports a failure on
// errOut in the selected output format. It returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd, a := newRootCmd()
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(append([]string{}, args...))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("Command failed")
		a.renderError(errOut, err)
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "snaparch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.rulesFile, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "decks", Title: "DECKS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "rules", Title: "RULES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newNormalizeCmd(a))
	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newReportCmd(a))
	rootCmd.AddCommand(newExplainCmd(a))
	rootCmd.AddCommand(newArchetypesCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(a))

	setupHelpTopics(rootCmd)

	return rootCmd, a
}

// readCode returns the deck code argument, or standard input for "-" or no argument
func readCode(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadStdin)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New(errors.ErrInvalidInput, MsgErrEmptyStdin)
	}
	return string(data), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
