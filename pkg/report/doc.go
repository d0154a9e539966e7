// Package report aggregates tournament standings into card and archetype
// usage tables and writes them as CSV.
//
// Every count is computed per top cut: a player placed at standing s is
// counted in the cut c when s <= c. The first cut is reported in the
// "Count" column and the remaining ones as "Top N" columns, so cuts are
// usually listed from the widest to the narrowest:
//
//	cuts := []int{1024, 64, 32, 16}
//	summary, err := report.Generate(ctx, "output", standings, cuts, classifier, normalizer)
//
// Generate writes cards.csv and decks.csv into the output directory.
package report
