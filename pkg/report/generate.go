package report

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/snaparch/pkg/cards"
	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/arthur-debert/snaparch/pkg/rules"
	"github.com/arthur-debert/snaparch/pkg/topdeck"
	"golang.org/x/sync/errgroup"
)

// Output file names inside the report directory
const (
	CardsFile = "cards.csv"
	DecksFile = "decks.csv"
)

// Summary is what Generate produced
type Summary struct {
	Dir     string     `json:"dir"`
	Players int        `json:"players"`
	Skipped int        `json:"skipped"`
	Cards   *CardTable `json:"cards"`
	Decks   *DeckTable `json:"decks"`
}

// Generate computes the card and deck tables for standings and writes them to
// dir as cards.csv and decks.csv. Both reports are produced concurrently.
func Generate(ctx context.Context, dir string, standings []topdeck.Standing, cuts []int,
	classifier *rules.Classifier, n *cards.Normalizer) (*Summary, error) {
	logger := logging.GetLogger("report")
	defer logging.LogOperationStart(logger, "report")()

	if err := validateCuts(cuts); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportWrite, "creating output directory %s", dir).
			WithDetail("path", dir)
	}

	entries, skipped := Entries(standings, n)
	summary := &Summary{Dir: dir, Players: len(standings), Skipped: skipped}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		table, err := CardStats(entries, cuts)
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		summary.Cards = table
		return writeFile(filepath.Join(dir, CardsFile), func(w io.Writer) error {
			return WriteCardsCSV(w, table)
		})
	})
	g.Go(func() error {
		table, err := DeckStats(entries, cuts, classifier)
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		summary.Decks = table
		return writeFile(filepath.Join(dir, DecksFile), func(w io.Writer) error {
			return WriteDecksCSV(w, table)
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("dir", dir).
		Int("players", summary.Players).
		Int("skipped", skipped).
		Int("unclassified", summary.Decks.Unclassified).
		Msg("Reports written")
	return summary, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "opening %s", path).WithDetail("path", path)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, errors.ErrReportWrite, "writing %s", path).WithDetail("path", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "closing %s", path).WithDetail("path", path)
	}
	return nil
}
