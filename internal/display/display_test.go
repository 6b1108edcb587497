package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clamstew/siteprompt/internal/registry"
)

func TestShowResult(t *testing.T) {
	tests := []struct {
		name   string
		errMsg string
		output string
		want   []string
	}{
		{
			name:   "error wins",
			errMsg: "bash: command not found: foo",
			want:   []string{"bash: command not found: foo"},
		},
		{
			name:   "output",
			output: "Opening site: https://github.com/clamstew",
			want:   []string{"Opening site: https://github.com/clamstew"},
		},
		{
			name:   "multi-line output keeps lines unpadded",
			output: "twitter\nfoo\nhistory",
			want:   []string{"twitter\nfoo\nhistory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).ShowResult(tt.errMsg, tt.output)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestShowResult_Nothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).ShowResult("", "")
	assert.Empty(t, buf.String())
}

func TestShowSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.ShowSuggestions([]string{"github", "site code"})
	assert.Equal(t, "Commands to try:\n  - github\n  - site code\n", buf.String())

	buf.Reset()
	p.ShowSuggestions(nil)
	assert.Equal(t, "No matching commands. Try again.\n", buf.String())
}

func TestShowBanner(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).ShowBanner("clay.codes", "run a command ...")

	assert.Contains(t, buf.String(), "clay.codes")
	assert.Contains(t, buf.String(), "run a command ...")
}

func TestParseListFormat(t *testing.T) {
	for _, in := range []string{"table", "MARKDOWN", "plain"} {
		_, err := ParseListFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseListFormat("csv")
	assert.Error(t, err)
}

func TestShowCommands(t *testing.T) {
	reg := registry.Default()

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf).ShowCommands(reg.Entries(), ListPlain))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, reg.Len())
		assert.Equal(t, "twitter\thttps://twitter.com/Clay_Stewart", lines[0])
		assert.Equal(t, "history\t(built-in)", lines[len(lines)-1])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf).ShowCommands(reg.Entries(), ListTable))

		out := buf.String()
		assert.Contains(t, out, "site code")
		assert.Contains(t, out, "https://github.com/clamstew/clay.codes")
		assert.Contains(t, out, "(built-in)")
	})

	t.Run("markdown source", func(t *testing.T) {
		md := commandsMarkdown(reg.Entries())
		assert.True(t, strings.HasPrefix(md, "# Commands\n"))
		assert.Contains(t, md, "- **notes** opens <https://notes.build>")
		assert.Contains(t, md, "- **history** (built-in)")
	})
}

func TestAsMarkdownList(t *testing.T) {
	assert.Equal(t, "1. `twitter`\n1. `history`", asMarkdownList("twitter\nhistory"))
}

func TestNewSpinnerSuffix(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Opening browser...")
	assert.Equal(t, " Opening browser...", s.s.Suffix)
}
