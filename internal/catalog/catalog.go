// Package catalog holds the embedded guides and their lookup table.
//
// The catalog is built once at startup from content embedded in the binary
// and is read-only afterwards. Guides appear in the order declared in
// content/manifest.yaml.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content
var contentFS embed.FS

// Doc is a single guide.
type Doc struct {
	Slug        string // short token used as CLI argument
	Title       string // human-readable title
	Description string // one-line summary for listings
	Body        string // full guide text, markdown-like
	Draft       bool   // drafts are listed but excluded from 'show --all'
}

// catalog pairs the declaration-order slice with a slug index. Both are
// populated in a single pass so they can never disagree.
type catalog struct {
	ordered []Doc
	bySlug  map[string]int
}

var docs = mustBuild()

func mustBuild() *catalog {
	c, err := build(contentFS, "content")
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded content is broken: %v", err))
	}
	return c
}

// manifest lists guide slugs in display order.
type manifest struct {
	Guides []string `yaml:"guides"`
}

// frontmatter is the YAML header of each content file.
type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

// build reads dir/manifest.yaml and the content files it names from fsys.
// Any inconsistency is an error: a slug with no file, a file no slug names,
// a duplicate slug, a missing or malformed frontmatter block.
func build(fsys fs.FS, dir string) (*catalog, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Guides) == 0 {
		return nil, fmt.Errorf("manifest names no guides")
	}

	c := &catalog{bySlug: make(map[string]int, len(m.Guides))}
	for _, slug := range m.Guides {
		if _, dup := c.bySlug[slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q in manifest", slug)
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, slug+".md"))
		if err != nil {
			return nil, fmt.Errorf("guide %q: %w", slug, err)
		}
		doc, err := parseDoc(slug, string(data))
		if err != nil {
			return nil, fmt.Errorf("guide %q: %w", slug, err)
		}
		c.bySlug[slug] = len(c.ordered)
		c.ordered = append(c.ordered, doc)
	}

	// Every content file must be reachable through the manifest.
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading content dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		if _, ok := c.bySlug[slug]; !ok {
			return nil, fmt.Errorf("content file %s is not listed in the manifest", name)
		}
	}

	return c, nil
}

// parseDoc splits a content file into its frontmatter and body.
func parseDoc(slug, content string) (Doc, error) {
	if !strings.HasPrefix(content, "---\n") {
		return Doc{}, fmt.Errorf("missing frontmatter")
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return Doc{}, fmt.Errorf("unterminated frontmatter")
	}
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return Doc{}, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if fm.Title == "" {
		return Doc{}, fmt.Errorf("frontmatter has no title")
	}
	body := strings.TrimPrefix(rest[end+len("\n---\n"):], "\n")
	return Doc{
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Body:        body,
		Draft:       fm.Draft,
	}, nil
}

func (c *catalog) all() []Doc {
	out := make([]Doc, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *catalog) published() []Doc {
	var out []Doc
	for _, d := range c.ordered {
		if !d.Draft {
			out = append(out, d)
		}
	}
	return out
}

func (c *catalog) lookup(slug string) (Doc, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Doc{}, false
	}
	return c.ordered[i], true
}

// All returns every guide in declaration order, drafts included.
func All() []Doc {
	return docs.all()
}

// Published returns every non-draft guide in declaration order.
func Published() []Doc {
	return docs.published()
}

// Lookup finds a guide by slug. Matching is exact and case-sensitive.
func Lookup(slug string) (Doc, bool) {
	return docs.lookup(slug)
}

// Resolve maps requested slugs to guides for the show command.
func Resolve(slugs []string) ([]Doc, error) {
	return docs.resolve(slugs)
}
