package studio

import (
	"sort"
	"strings"

	"github.com/incubyte/segmint/client"
)

// Sort orders accepted by Criteria.SortBy.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// Criteria narrows and orders the workspace view. Zero values mean "no
// constraint"; an empty SortBy sorts newest first.
type Criteria struct {
	// Platform keeps only items for this platform ("all" and "" both match
	// everything).
	Platform string
	// Status keeps only items in this workflow state ("all" and "" both
	// match everything).
	Status string
	// Search keeps items whose content or core message contains this text,
	// case-insensitively.
	Search string
	// SortBy is SortNewest or SortOldest.
	SortBy string
}

func matchesAll(v string) bool { return v == "" || v == "all" }

// Filter returns the workspace items matching c, ordered per c.SortBy. The
// sort is stable so items sharing a timestamp keep their relative order.
func (w *Workspace) Filter(c Criteria) []client.ContentItem {
	items := w.Items()

	out := make([]client.ContentItem, 0, len(items))
	needle := strings.ToLower(c.Search)
	for _, it := range items {
		if !matchesAll(c.Platform) && it.Platform != c.Platform {
			continue
		}
		if !matchesAll(c.Status) && string(it.Status) != c.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(it.Content), needle) &&
			!strings.Contains(strings.ToLower(it.CoreMessage), needle) {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c.SortBy == SortOldest {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
