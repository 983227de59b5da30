package render

import (
	"strings"

	"guidebook/internal/catalog"

	"github.com/fatih/color"
)

var (
	titleColor = color.New(color.Bold)
	dimColor   = color.New(color.Faint)
)

// divider separates guide blocks in show output.
func divider() string {
	return dimColor.Sprint(strings.Repeat("─", 60))
}

// Show formats the given guides for the show command: per guide a bold
// title with the slug shown parenthetically, a blank line, then the body
// with inline code spans colorized. Blocks are joined by a horizontal rule
// flanked by blank lines.
func Show(docs []catalog.Doc) string {
	blocks := make([]string, 0, len(docs))
	for _, d := range docs {
		var b strings.Builder
		b.WriteString(titleColor.Sprint(d.Title))
		b.WriteString(" ")
		b.WriteString(dimColor.Sprintf("(%s)", d.Slug))
		b.WriteString("\n\n")
		b.WriteString(Colorize(strings.TrimRight(d.Body, "\n")))
		b.WriteString("\n")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n"+divider()+"\n\n")
}
