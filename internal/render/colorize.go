package render

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	commandColor = color.New(color.FgCyan)
	fileColor    = color.New(color.FgGreen)
	codeColor    = color.New(color.FgYellow)
)

// spanRe matches a single-line backtick-delimited inline code span.
var spanRe = regexp.MustCompile("`([^`\n]+)`")

// fileSuffixRe matches spans that end in a file extension.
var fileSuffixRe = regexp.MustCompile(`\.[a-z0-9]+$`)

// rule pairs a span matcher with the style it applies. Rules are tried in
// order and the first match wins, so a command like `claude config.json`
// keeps its command styling rather than being restyled as a file.
type rule struct {
	match func(string) bool
	style *color.Color
}

var rules = []rule{
	{isCommand, commandColor},
	{fileSuffixRe.MatchString, fileColor},
	{func(string) bool { return true }, codeColor},
}

func isCommand(s string) bool {
	return strings.HasPrefix(s, "claude ") || strings.HasPrefix(s, "npx ")
}

// Colorize styles every inline code span in text by category: shell
// command invocations, file references, then everything else. Spans are
// found in a single pass, so substitutions never overlap.
func Colorize(text string) string {
	return spanRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[1 : len(m)-1]
		for _, r := range rules {
			if r.match(inner) {
				return r.style.Sprint(inner)
			}
		}
		return m // unreachable, the last rule always matches
	})
}
