package studio

import "github.com/incubyte/segmint/client"

// Group is a set of content items displayed together: either the variants
// generated by one request, or a single standalone item.
type Group struct {
	// Key is the shared post id, or the item's own id for standalone items.
	Key   string
	Items []client.ContentItem
	// Platform, ContentType and CoreMessage come from the group's first
	// member; generation guarantees they match across members.
	Platform    string
	ContentType string
	CoreMessage string
	// FromSamePost is true only for multi-item groups that share a post id.
	// A single suggestion left after filtering renders standalone even if it
	// has a post id.
	FromSamePost bool
}

// GroupItems partitions items into display groups, keyed by post id where
// present. Group order follows the first appearance of each key, and items
// keep their order within a group, so grouping a sorted slice preserves the
// sort.
func GroupItems(items []client.ContentItem) []Group {
	byKey := map[string]int{}
	groups := []Group{}
	for _, it := range items {
		key := it.PostID
		if key == "" {
			key = it.ID
		}
		if idx, ok := byKey[key]; ok {
			groups[idx].Items = append(groups[idx].Items, it)
			continue
		}
		byKey[key] = len(groups)
		groups = append(groups, Group{
			Key:         key,
			Items:       []client.ContentItem{it},
			Platform:    it.Platform,
			ContentType: it.ContentType,
			CoreMessage: it.CoreMessage,
		})
	}
	for i := range groups {
		groups[i].FromSamePost = groups[i].Items[0].PostID != "" && len(groups[i].Items) > 1
	}
	return groups
}
