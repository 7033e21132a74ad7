package engine

import (
	"fmt"
	"strings"

	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/profile"
)

// fulltextPerCategory caps the scored hits reported per category by the
// full-text fallback search.
const fulltextPerCategory = 3

// Resolver finds the record(s) answering a message within one category and
// renders them. All lookups are deterministic: records are scanned in
// document order and the first match wins.
type Resolver struct {
	profile *profile.Profile
	data    *dataset.Dataset
}

// NewResolver creates a Resolver over an immutable dataset.
func NewResolver(p *profile.Profile, d *dataset.Dataset) *Resolver {
	return &Resolver{profile: p, data: d}
}

// Resolve answers a message from the given category. It never fails:
// absent data yields the category's unavailable message, and a miss
// yields its guidance prompt.
func (r *Resolver) Resolve(category, message string) string {
	cat, declared := r.profile.Categories[category]
	if !declared {
		return profile.Category{}.UnavailableMessage(category)
	}

	doc, ok := r.data.Category(category)
	if !ok {
		return cat.UnavailableMessage(category)
	}

	items := categoryItems(cat, doc)
	lower := strings.ToLower(message)

	for _, it := range items {
		id := identity(cat, it)
		if id != "" && strings.Contains(lower, strings.ToLower(id)) {
			return Format(cat, category, []Item{it})
		}
	}

	if cat.Overview {
		limit := cat.Limit()
		if len(items) > limit {
			items = items[:limit]
		}
		return Format(cat, category, items)
	}

	return cat.NoMatchMessage(category)
}

// SearchAll runs the scored full-text search over every loaded category,
// reporting the top hits per category. ok is false when nothing cleared
// the threshold.
func (r *Resolver) SearchAll(message string) (string, bool) {
	threshold := r.profile.Threshold()

	var b strings.Builder
	found := false
	for _, name := range r.profile.CategoryNames() {
		doc, ok := r.data.Category(name)
		if !ok {
			continue
		}
		matches := dataset.SearchLeaves(doc, message, threshold)
		if len(matches) == 0 {
			continue
		}
		if len(matches) > fulltextPerCategory {
			matches = matches[:fulltextPerCategory]
		}

		cat := r.profile.Categories[name]
		if found {
			b.WriteString("\n")
		}
		b.WriteString(headerLine(cat, name))
		b.WriteString("\n")
		for _, m := range matches {
			fmt.Fprintf(&b, "- %s\n", m.Text)
		}
		found = true
	}

	return strings.TrimRight(b.String(), "\n"), found
}

// categoryItems flattens a category document into its records. List-shaped
// categories optionally unwrap a single wrapper key; map-shaped categories
// yield one item per key, in document order.
func categoryItems(cat profile.Category, doc *dataset.Value) []Item {
	switch cat.Shape {
	case profile.ShapeMap:
		keys := doc.Keys()
		items := make([]Item, 0, len(keys))
		for _, key := range keys {
			v, _ := doc.Field(key)
			items = append(items, Item{Key: key, Value: v})
		}
		return items
	default:
		list := doc
		if cat.ListKey != "" {
			if wrapped, ok := doc.Field(cat.ListKey); ok {
				list = wrapped
			}
		}
		items := make([]Item, 0, list.Len())
		for i := 0; i < list.Len(); i++ {
			items = append(items, Item{Value: list.Index(i)})
		}
		return items
	}
}

// identity returns the string an item is matched by: the map key, or the
// record's identifying field for list shapes.
func identity(cat profile.Category, it Item) string {
	if it.Key != "" {
		return it.Key
	}
	if cat.MatchField == "" {
		return ""
	}
	f, ok := it.Value.Field(cat.MatchField)
	if !ok {
		return ""
	}
	return f.Str()
}
