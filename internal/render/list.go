package render

import (
	"strings"

	"guidebook/internal/catalog"

	"github.com/fatih/color"
)

const listIndent = "  "

var (
	slugColor  = color.New(color.Bold)
	draftColor = color.New(color.Faint)
)

// List formats the full catalog for the list command: one entry per guide,
// drafts included, each a slug+title header followed by the description
// wrapped to the given terminal width. Entries are separated by a blank
// line.
func List(docs []catalog.Doc, width int) string {
	wrapWidth := width - len(listIndent)
	if wrapWidth < minWrapWidth {
		wrapWidth = minWrapWidth
	}

	entries := make([]string, 0, len(docs))
	for _, d := range docs {
		var b strings.Builder
		b.WriteString(slugColor.Sprint(d.Slug))
		b.WriteString("  ")
		b.WriteString(d.Title)
		if d.Draft {
			b.WriteString(" ")
			b.WriteString(draftColor.Sprint("(draft)"))
		}
		b.WriteString("\n")
		for _, line := range Wrap(d.Description, wrapWidth) {
			if line != "" {
				b.WriteString(listIndent)
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n")
}
