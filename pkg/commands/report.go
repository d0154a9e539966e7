package commands

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/report"
	"github.com/arthur-debert/snaparch/pkg/topdeck"
	"github.com/arthur-debert/snaparch/pkg/ui/views"
)

// ReportOptions holds the inputs of Report
type ReportOptions struct {
	TID string
	// OutputDir overrides report.output_dir; reports go to OutputDir/TID
	OutputDir string
	// Cuts overrides report.cuts
	Cuts []int
	// Limit caps the rows shown per summary table
	Limit int
}

// Report fetches a tournament from TopDeck and writes its card and deck reports
func Report(ctx context.Context, env *Env, opts ReportOptions) (*views.TournamentReport, error) {
	logger := logging.GetLogger("commands")
	cfg := env.Config

	client, err := topdeck.NewClient(topdeck.Options{
		BaseURL: cfg.TopDeck.BaseURL,
		APIKey:  cfg.TopDeck.APIKey,
		Timeout: cfg.TopDeck.Timeout,
		Retries: cfg.TopDeck.Retries,
	})
	if err != nil {
		return nil, err
	}

	tournament, err := client.GetTournament(ctx, opts.TID)
	if err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.Report.OutputDir
	}
	cuts := opts.Cuts
	if len(cuts) == 0 {
		cuts = cfg.Report.Cuts
	}
	dir := filepath.Join(outputDir, opts.TID)
	logger.Info().Str("tid", opts.TID).Str("dir", dir).Ints("cuts", cuts).Msg("Generating reports")

	summary, err := report.Generate(ctx, dir, tournament.Standings, cuts, env.Classifier, env.Normalizer)
	if err != nil {
		return nil, err
	}
	return &views.TournamentReport{
		TID:     opts.TID,
		Name:    tournament.Name,
		Summary: summary,
		Limit:   opts.Limit,
	}, nil
}
