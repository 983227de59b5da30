// Package issue builds prefilled GitHub new-issue URLs for guide feedback.
package issue

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/browser"
)

const newIssueURL = "https://github.com/guidebook-cli/guidebook/issues/new"

// categories maps the --category option to the tracker label it applies.
var categories = map[string]string{
	"guide": "area:guides",
	"cli":   "area:cli",
	"site":  "area:site",
}

// Params are the optional fields of an open-issue request.
type Params struct {
	Category    string // one of the categories keys, or empty
	Title       string
	Description string
	Strategy    string // proposed fix or improvement approach
}

// URL builds the prefilled new-issue URL. An unknown category is an input
// error naming every valid choice.
func URL(p Params) (string, error) {
	q := url.Values{}
	if p.Category != "" {
		label, ok := categories[p.Category]
		if !ok {
			return "", fmt.Errorf("unknown category %q (valid: %s)",
				p.Category, strings.Join(validCategories(), ", "))
		}
		q.Set("labels", label)
	}
	if p.Title != "" {
		q.Set("title", p.Title)
	}
	if body := issueBody(p); body != "" {
		q.Set("body", body)
	}

	if len(q) == 0 {
		return newIssueURL, nil
	}
	return newIssueURL + "?" + q.Encode(), nil
}

// Open launches the default browser on the given URL.
func Open(u string) error {
	if err := browser.OpenURL(u); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

func issueBody(p Params) string {
	var sections []string
	if p.Description != "" {
		sections = append(sections, "## Description\n\n"+p.Description)
	}
	if p.Strategy != "" {
		sections = append(sections, "## Suggested approach\n\n"+p.Strategy)
	}
	return strings.Join(sections, "\n\n")
}

func validCategories() []string {
	out := make([]string, 0, len(categories))
	for c := range categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
