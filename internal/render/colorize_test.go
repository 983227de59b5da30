package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

const (
	ansiCyan   = "\x1b[36m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func TestColorize_Categories(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"claude command",
			"run `claude commit` now",
			"run " + ansiCyan + "claude commit" + ansiReset + " now",
		},
		{
			"npx command",
			"`npx serve .`",
			ansiCyan + "npx serve ." + ansiReset,
		},
		{
			"file reference",
			"edit `settings.json` first",
			"edit " + ansiGreen + "settings.json" + ansiReset + " first",
		},
		{
			"generic code span",
			"pass `--verbose` to it",
			"pass " + ansiYellow + "--verbose" + ansiReset + " to it",
		},
		{
			"command beats file suffix",
			"`claude config.json`",
			ansiCyan + "claude config.json" + ansiReset,
		},
		{
			"multiple spans in one line",
			"`npx x` then `CLAUDE.md` then `foo`",
			ansiCyan + "npx x" + ansiReset + " then " +
				ansiGreen + "CLAUDE.md" + ansiReset + " then " +
				ansiYellow + "foo" + ansiReset,
		},
		{
			"no spans untouched",
			"plain text with no code",
			"plain text with no code",
		},
		{
			"unterminated backtick untouched",
			"a `dangling span",
			"a `dangling span",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Colorize(tt.in))
		})
	}
}

func TestColorize_NoColorStripsBackticks(t *testing.T) {
	color.NoColor = true

	got := Colorize("run `claude commit` on `CLAUDE.md`")
	assert.Equal(t, "run claude commit on CLAUDE.md", got)
}

func TestColorize_Idempotent(t *testing.T) {
	color.NoColor = true

	in := "mix of `npx a`, `b.md`, and `c`"
	assert.Equal(t, Colorize(in), Colorize(in))
}
