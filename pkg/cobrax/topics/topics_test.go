// Test Type: Unit Test
// Description: Tests for the topics package - topic discovery and the help command

package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/snaparch/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"rules.md":        {Data: []byte("# Rules\n\nRules are checked in order.")},
		"deck-codes.txt":  {Data: []byte("Deck codes are base64.")},
		"option-cuts.md":  {Data: []byte("Cuts are standings thresholds.")},
		"nested/extra.md": {Data: []byte("nested topic")},
		"ignore.json":     {Data: []byte("{}")},
		"notes.txxt":      {Data: []byte("custom extension")},
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		opts     topics.Options
		expected []string
	}{
		{
			name:     "default_extensions",
			expected: []string{"deck-codes", "extra", "option-cuts", "rules"},
		},
		{
			name:     "custom_extensions",
			opts:     topics.Options{Extensions: []string{".txxt"}},
			expected: []string{"notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := topics.NewWithOptions(topicFS(), tt.opts)
			require.NoError(t, tm.Scan())
			assert.Equal(t, tt.expected, tm.ListTopics())
		})
	}

	t.Run("nil_source", func(t *testing.T) {
		tm := topics.New(nil)
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := topics.New(topicFS())
	require.NoError(t, tm.Scan())

	tests := []struct {
		name    string
		query   string
		found   bool
		content string
		format  string
	}{
		{"exact", "rules", true, "# Rules\n\nRules are checked in order.", ".md"},
		{"text", "deck-codes", true, "Deck codes are base64.", ".txt"},
		{"flag_style", "--cuts", true, "Cuts are standings thresholds.", ".md"},
		{"option_name", "option-cuts", true, "Cuts are standings thresholds.", ".md"},
		{"missing", "nope", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
				assert.Equal(t, tt.format, topic.Format())
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	t.Run("with_topics", func(t *testing.T) {
		tm := topics.New(topicFS())
		require.NoError(t, tm.Scan())

		var out bytes.Buffer
		tm.WriteList(&out, "snaparch")
		expected := "Available help topics:\n" +
			"\nGeneral topics:\n  deck-codes\n  extra\n  rules\n" +
			"\nOption topics:\n  --cuts\n" +
			"\nUse 'snaparch help <topic>' to read about a specific topic.\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		topics.New(fstest.MapFS{}).WriteList(&out, "snaparch")
		assert.Equal(t, "No help topics available.\n", out.String())
	})
}

type upperRenderer struct{}

func (upperRenderer) Render(content string, format string) string {
	return strings.ToUpper(content) + format
}

func TestHelpCommand(t *testing.T) {
	execute := func(t *testing.T, args ...string) string {
		t.Helper()
		root := &cobra.Command{Use: "snaparch", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "decode", Short: "Decode a deck code", Run: func(*cobra.Command, []string) {}})
		_, err := topics.InitializeWithOptions(root, topicFS(), topics.Options{Renderer: upperRenderer{}})
		require.NoError(t, err)

		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "DECK CODES ARE BASE64..txt", execute(t, "help", "deck-codes"))
	})

	t.Run("flag_style_topic", func(t *testing.T) {
		assert.Equal(t, "CUTS ARE STANDINGS THRESHOLDS..md", execute(t, "help", "--cuts"))
	})

	t.Run("list", func(t *testing.T) {
		assert.Contains(t, execute(t, "help", "topics"), "  rules\n")
	})

	t.Run("command", func(t *testing.T) {
		assert.Contains(t, execute(t, "help", "decode"), "Decode a deck code")
	})

	t.Run("root", func(t *testing.T) {
		assert.Contains(t, execute(t, "help"), "decode")
	})
}

func TestGlamourRenderer_PassesThroughText(t *testing.T) {
	r := topics.NewGlamourRenderer(80)
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.NotEmpty(t, r.Render("# Title", ".md"))
}
