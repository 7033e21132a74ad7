package engine

import (
	"fmt"
	"strings"

	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/profile"
)

// Item is one record handed to a formatting template: the map key it was
// stored under (empty for list records) and its value.
type Item struct {
	Key   string
	Value *dataset.Value
}

// missingField is substituted when a template references a field the
// record does not carry. Rendering a visible placeholder beats silently
// producing empty output.
const missingField = "(not available)"

// template renders one or more records of a category into display text.
// Templates are pure; they never fail.
type template func(cat profile.Category, name string, items []Item) string

var templates = map[string]template{
	"zodiac":        formatZodiac,
	"horoscope":     formatHoroscope,
	"transits":      formatTransits,
	"compatibility": formatCompatibility,
	"remedies":      formatRemedies,
	"terms":         formatTerms,
	"festivals":     formatFestivals,
	"holidays":      formatHolidays,
	"benefits":      formatBenefits,
}

// Format renders items using the category's registered template. Unknown
// template names fall back to a generic structure dump rather than failing.
func Format(cat profile.Category, name string, items []Item) string {
	tmpl, ok := templates[cat.Format]
	if !ok {
		tmpl = formatGeneric
	}
	return strings.TrimRight(tmpl(cat, name, items), "\n")
}

// field returns the first present, non-empty field among names, or the
// missing-field placeholder.
func field(v *dataset.Value, names ...string) string {
	for _, n := range names {
		if f, ok := v.Field(n); ok {
			if s := f.Scalar(); s != "" {
				return s
			}
		}
	}
	return missingField
}

// optField is field without the placeholder, for optional decorations.
func optField(v *dataset.Value, names ...string) string {
	for _, n := range names {
		if f, ok := v.Field(n); ok {
			if s := f.Scalar(); s != "" {
				return s
			}
		}
	}
	return ""
}

// capitalize upper-cases the first letter of every word, for map keys
// like "shani dosha" or "health insurance".
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// itemName is the display name of an item: the capitalized map key, or
// the record's name field.
func itemName(it Item) string {
	if it.Key != "" {
		return capitalize(it.Key)
	}
	return field(it.Value, "name")
}

func headerLine(cat profile.Category, name string) string {
	title := cat.Title(name) + ":"
	if cat.Icon == "" {
		return title
	}
	return cat.Icon + " " + title
}

func formatZodiac(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s %s (%s)\n", cat.Icon, itemName(it), field(it.Value, "period"))
		fmt.Fprintf(&b, "Traits: %s\n", field(it.Value, "traits", "characteristics"))
		fmt.Fprintf(&b, "Element: %s, Ruling Planet: %s",
			field(it.Value, "element"), field(it.Value, "planet", "ruling_planet"))
	}
	return b.String()
}

func formatHoroscope(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s %s Horoscope for Today:\n", cat.Icon, itemName(it))
		if pred, ok := it.Value.Field("prediction"); ok {
			b.WriteString(pred.Scalar())
			continue
		}
		fmt.Fprintf(&b, "- Love: %s\n", field(it.Value, "love"))
		fmt.Fprintf(&b, "- Career: %s\n", field(it.Value, "career"))
		fmt.Fprintf(&b, "- Health: %s\n", field(it.Value, "health"))
		fmt.Fprintf(&b, "- Advice: %s", field(it.Value, "advice"))
	}
	return b.String()
}

func formatTransits(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s in %s (%s): %s\n",
			field(it.Value, "planet"), field(it.Value, "sign"),
			field(it.Value, "date"), field(it.Value, "effect"))
	}
	return b.String()
}

func formatCompatibility(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s ♡ %s\n", field(it.Value, "sign1"), field(it.Value, "sign2"))
		fmt.Fprintf(&b, "- Strength: %s\n", field(it.Value, "strength"))
		fmt.Fprintf(&b, "- Weakness: %s\n", field(it.Value, "weakness"))
		fmt.Fprintf(&b, "- Score: %s/100\n", field(it.Value, "score"))
	}
	return b.String()
}

func formatRemedies(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for _, it := range items {
		switch it.Value.Kind() {
		case dataset.KindList:
			// Plain remedy lists: one bullet per entry.
			for i := 0; i < it.Value.Len(); i++ {
				fmt.Fprintf(&b, "- %s\n", it.Value.Index(i).Scalar())
			}
		default:
			fmt.Fprintf(&b, "Issue: %s\n", capitalize(it.Key))
			fmt.Fprintf(&b, "- Remedies: %s\n", field(it.Value, "remedies"))
			fmt.Fprintf(&b, "- Mantra: %s\n", field(it.Value, "mantra"))
		}
	}
	return b.String()
}

func formatTerms(cat profile.Category, name string, items []Item) string {
	if len(items) == 1 {
		it := items[0]
		return fmt.Sprintf("%s %s: %s", cat.Icon,
			field(it.Value, "term", "word"), field(it.Value, "definition", "meaning"))
	}

	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s: %s\n",
			field(it.Value, "term", "word"), field(it.Value, "definition", "meaning"))
	}
	return b.String()
}

func formatFestivals(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s on %s (%s)\n",
			field(it.Value, "name"), field(it.Value, "date"), field(it.Value, "significance"))
	}
	return b.String()
}

func formatHolidays(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s: %s", field(it.Value, "date"), field(it.Value, "name"))
		if typ := optField(it.Value, "type"); typ != "" {
			fmt.Fprintf(&b, " (%s)", typ)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatBenefits covers the policy-handbook map categories: benefits, PTO,
// IT policies, conduct. Each entry is a summary plus detail bullets.
func formatBenefits(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s %s: %s", cat.Icon, capitalize(it.Key), field(it.Value, "summary"))
		if details, ok := it.Value.Field("details"); ok {
			for j := 0; j < details.Len(); j++ {
				fmt.Fprintf(&b, "\n- %s", details.Index(j).Scalar())
			}
		}
	}
	return b.String()
}

func formatGeneric(cat profile.Category, name string, items []Item) string {
	var b strings.Builder
	b.WriteString(headerLine(cat, name))
	b.WriteString("\n")
	for _, it := range items {
		if it.Key != "" {
			fmt.Fprintf(&b, "%s:\n", capitalize(it.Key))
		}
		b.WriteString(it.Value.Dump())
	}
	return b.String()
}
