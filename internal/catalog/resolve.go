package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSlugs is returned when a show request contains no usable slugs.
var ErrNoSlugs = errors.New("no slugs provided")

// UnknownSlugsError reports every requested slug that is not in the catalog,
// so the user can fix all of them in one pass.
type UnknownSlugsError struct {
	Slugs []string
}

func (e *UnknownSlugsError) Error() string {
	return fmt.Sprintf("unknown slug(s): %s — run 'guidebook list' to see available guides",
		strings.Join(e.Slugs, ", "))
}

// resolve validates and de-duplicates requested slugs, returning the matching
// guides in first-occurrence order. Blank entries are dropped before
// validation; validation happens in full before any guide is returned, so an
// invalid request never produces partial output.
func (c *catalog) resolve(slugs []string) ([]Doc, error) {
	trimmed := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s = strings.TrimSpace(s); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	if len(trimmed) == 0 {
		return nil, ErrNoSlugs
	}

	var unknown []string
	for _, s := range trimmed {
		if _, ok := c.lookup(s); !ok {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownSlugsError{Slugs: unknown}
	}

	seen := make(map[string]bool, len(trimmed))
	out := make([]Doc, 0, len(trimmed))
	for _, s := range trimmed {
		if seen[s] {
			continue
		}
		seen[s] = true
		d, _ := c.lookup(s)
		out = append(out, d)
	}
	return out, nil
}
