package render

import (
	"strings"
	"testing"

	"guidebook/internal/catalog"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_TwoEntries(t *testing.T) {
	color.NoColor = true

	docs := []catalog.Doc{
		{Slug: "a", Title: "A", Description: "x y z"},
		{Slug: "b", Title: "B", Description: ""},
	}

	got := List(docs, 40)
	want := "a  A\n" +
		"  x y z\n" +
		"\n" +
		"b  B\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestList_WrapsDescriptions(t *testing.T) {
	color.NoColor = true

	docs := []catalog.Doc{
		{Slug: "long", Title: "Long", Description: strings.Repeat("word ", 20)},
	}

	got := List(docs, 40)
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 40, "line %q exceeds terminal width", line)
	}
}

func TestList_EnforcesMinimumWrapWidth(t *testing.T) {
	color.NoColor = true

	docs := []catalog.Doc{
		{Slug: "a", Title: "A", Description: "twelve chars plus more"},
	}

	// Degenerate width still wraps at minWrapWidth, not at zero.
	got := List(docs, 0)
	require.Contains(t, got, "  twelve chars plus")
}

func TestList_IncludesDrafts(t *testing.T) {
	color.NoColor = true

	docs := []catalog.Doc{
		{Slug: "d", Title: "D", Description: "desc", Draft: true},
	}

	got := List(docs, 80)
	assert.Contains(t, got, "d  D (draft)")
}

func TestList_StableAndIdempotent(t *testing.T) {
	color.NoColor = true

	docs := catalog.All()
	first := List(docs, 80)
	second := List(catalog.All(), 80)
	assert.Equal(t, first, second)

	// One entry per catalog guide, in declaration order.
	for _, d := range docs {
		assert.Contains(t, first, d.Slug)
	}
	assert.Equal(t, len(docs), strings.Count(first, "\n\n")+1,
		"entries must be separated by exactly one blank line")
}
