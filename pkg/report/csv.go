package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCardsCSV writes the card table with its header
func WriteCardsCSV(w io.Writer, t *CardTable) error {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header())
	for _, row := range t.Rows {
		records = append(records, append([]string{row.Card}, itoa(row.Counts)...))
	}
	return writeAll(w, records)
}

// WriteDecksCSV writes the deck table with its header
func WriteDecksCSV(w io.Writer, t *DeckTable) error {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header())
	for _, row := range t.Rows {
		records = append(records, append([]string{row.Category, row.Derivation}, itoa(row.Counts)...))
	}
	return writeAll(w, records)
}

func writeAll(w io.Writer, records [][]string) error {
	writer := csv.NewWriter(w)
	// WriteAll flushes and reports any buffered write error
	return writer.WriteAll(records)
}

func itoa(counts []int) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = strconv.Itoa(c)
	}
	return out
}
