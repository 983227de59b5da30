package render

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	fallbackWidth = 80 // when no width can be detected
	minTermWidth  = 40 // reported widths are clamped up to this
	minWrapWidth  = 20 // wrap width after indentation never drops below this
)

// TerminalWidth returns the column count of stdout. When stdout is not a
// terminal it falls back to the COLUMNS variable, then to fallbackWidth.
// The result is never below minTermWidth.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return clampWidth(w)
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return clampWidth(w)
		}
	}
	return fallbackWidth
}

func clampWidth(w int) int {
	if w < minTermWidth {
		return minTermWidth
	}
	return w
}
