package deck

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/snaparch/pkg/errors"
)

const (
	commentPrefix = "#"
	separator     = ","
)

// Decode parses a deck code into the set of card identifiers it encodes.
//
// Exactly one non-blank, non-comment line must be present; anything else is
// an ErrDeckCodeFormat error whose "lines" detail holds the count found. A
// data line that is not base64 or not UTF-8 is an ErrDeckCodeDecode error.
// Missing base64 padding is tolerated. A code with no line breaks at all has
// its literal "\n" sequences (as found in JSON payloads) read as line breaks;
// comments of a multi-line code are left alone.
func Decode(code string) (Deck, error) {
	if !strings.Contains(code, "\n") {
		code = strings.ReplaceAll(code, `\n`, "\n")
	}

	var lines []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}
		lines = append(lines, trimmed)
	}

	if len(lines) != 1 {
		return nil, errors.Newf(errors.ErrDeckCodeFormat,
			"invalid deck code: expected 1 non-commented line got %d", len(lines)).
			WithDetail("lines", len(lines))
	}

	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(lines[0], "="))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDeckCodeDecode, "invalid deck code: not base64")
	}
	if !utf8.Valid(raw) {
		return nil, errors.New(errors.ErrDeckCodeDecode, "invalid deck code: not UTF-8")
	}

	return New(strings.Split(string(raw), separator)...), nil
}

// Encode produces a deck code for d. Each comment line becomes a "# " line
// ahead of the data line; multi-line comments are split. Identifiers are
// written in sorted order.
func Encode(d Deck, comments ...string) string {
	var b strings.Builder
	for _, comment := range comments {
		for _, line := range strings.Split(strings.ReplaceAll(comment, "\r\n", "\n"), "\n") {
			b.WriteString(commentPrefix)
			if line = strings.TrimRight(line, "\r"); line != "" {
				b.WriteString(" ")
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(base64.StdEncoding.EncodeToString([]byte(strings.Join(d.Cards(), separator))))
	b.WriteString("\n")
	return b.String()
}
