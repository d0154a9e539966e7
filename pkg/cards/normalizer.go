package cards

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/rs/zerolog"
)

// Invalid is returned for names that leave nothing to encode. It contains the
// deck-code separator, so no decoded deck ever holds it.
const Invalid = ","

const (
	edgeChars        = "The"
	lowerVowels      = "aeiouy"
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Normalizer maps display names to card identifiers. It is safe for
// concurrent use; lookups never evict, so a name keeps its identifier for the
// lifetime of the Normalizer.
type Normalizer struct {
	mu     sync.RWMutex
	known  map[string]string
	logger zerolog.Logger
}

// NewNormalizer creates a Normalizer seeded with the given override tables.
// Later tables win over earlier ones.
func NewNormalizer(overrides ...map[string]string) *Normalizer {
	known := make(map[string]string)
	for _, table := range overrides {
		for name, id := range table {
			known[name] = id
		}
	}
	return &Normalizer{
		known:  known,
		logger: logging.GetLogger("cards.normalizer"),
	}
}

// NewDefaultNormalizer creates a Normalizer seeded with DefaultOverrides
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(seedOverrides)
}

// Normalize returns the identifier for a display name
func (n *Normalizer) Normalize(name string) string {
	n.mu.RLock()
	id, ok := n.known[name]
	n.mu.RUnlock()
	if ok {
		return id
	}

	id = Derive(name)

	n.mu.Lock()
	if existing, ok := n.known[name]; ok {
		id = existing
	} else {
		n.known[name] = id
	}
	n.mu.Unlock()

	n.logger.Trace().Str("name", name).Str("id", id).Msg("Derived card identifier")
	return id
}

// NormalizeAll normalizes each name, keeping order
func (n *Normalizer) NormalizeAll(names []string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, n.Normalize(name))
	}
	return ids
}

// NormalizeDeck normalizes the display names of a deck. Names that leave
// nothing to encode are dropped, so Invalid never ends up in a deck.
func (n *Normalizer) NormalizeDeck(names []string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id := n.Normalize(name)
		if id == Invalid {
			n.logger.Debug().Str("name", name).Msg("Dropping card name with no identifier")
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Lookup reports the identifier already known for name without deriving one
func (n *Normalizer) Lookup(name string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	id, ok := n.known[name]
	return id, ok
}

// Len returns the number of names with a known identifier
func (n *Normalizer) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.known)
}

// Derive computes the identifier for name without consulting any override
// table.
func Derive(name string) string {
	trimmed := strings.Trim(strings.Trim(name, edgeChars), " ")
	if trimmed == "" {
		return Invalid
	}

	runes := []rune(trimmed)

	var b strings.Builder
	b.WriteRune(runes[0])
	count := 1
	for _, r := range runes[1:] {
		if strings.ContainsRune(asciiPunctuation, r) || unicode.IsSpace(r) {
			continue
		}
		count++
		if !strings.ContainsRune(lowerVowels, r) {
			b.WriteRune(r)
		}
	}

	b.WriteString(strings.ToUpper(strconv.FormatInt(int64(count), 16)))
	return b.String()
}
