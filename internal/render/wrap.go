// Package render turns catalog queries into formatted terminal output.
// Everything here is a pure function of its inputs; the CLI layer owns the
// single terminal-width query and the stdout write.
package render

import "strings"

// Wrap splits text into lines no wider than width using greedy line
// filling. Words are never split: a word longer than width is placed alone
// on its own line, over-long. Blank or whitespace-only input yields a
// single empty line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
