// Test Type: Unit Test
// Description: Tests for the ui package - output format parsing and detection

package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
	}{
		{"", ui.FormatAuto},
		{"auto", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"Terminal", ui.FormatTerminal},
		{"text", ui.FormatText},
		{"plain", ui.FormatText},
		{" JSON ", ui.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	t.Run("names_round_trip", func(t *testing.T) {
		for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
			parsed, err := ui.ParseFormat(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ui.ParseFormat("yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Equal(t, "yaml", errors.GetErrorDetails(err)["format"])
	})
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &buf))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatText, os.Stdout))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatAuto, &buf))

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, file))
}

func TestDetectFormat(t *testing.T) {
	t.Run("no_color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("regular_file", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, ui.FormatText, ui.DetectFormat(file))
	})
}
