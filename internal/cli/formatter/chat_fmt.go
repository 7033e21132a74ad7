package formatter

import (
	"fmt"
	"strings"

	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/engine"
	"github.com/astraldesk/astral/internal/profile"
)

// FormatWelcome renders the boxed greeting shown when a chat starts.
func FormatWelcome(p *profile.Profile) string {
	var b strings.Builder

	b.WriteString(StyleFg.Render(p.Greeting))
	b.WriteString("\n\n")
	b.WriteString(Dim("Ask about: ") + StyleBlue.Render(strings.Join(topicLabels(p), ", ")))
	b.WriteString("\n")
	b.WriteString(Dim("Type /quit to leave, /topics to list topics again."))

	return RenderBox(p.Name, b.String())
}

// FormatReply renders one assistant reply with its source badge.
func FormatReply(r *engine.Reply) string {
	var b strings.Builder

	b.WriteString(SourceBadge(r.Source))
	if r.Category != "" {
		b.WriteString(Dim(" · " + r.Category))
	}
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(r.Text))
	b.WriteString("\n")

	return b.String()
}

// UserLine renders the echoed user message inside the chat transcript.
func UserLine(text string) string {
	return Dim("You: ") + StyleFg.Render(text)
}

// FormatTopics renders the topic list for the /topics chat command.
func FormatTopics(p *profile.Profile) string {
	var b strings.Builder

	b.WriteString(Header("Topics"))
	b.WriteString("\n")
	for _, name := range p.CategoryNames() {
		cat := p.Categories[name]
		b.WriteString(fmt.Sprintf("  %s %s\n", cat.Icon, StyleFg.Render(cat.Title(name))))
	}

	return b.String()
}

// FormatProfileList renders the available profiles, marking the active one.
func FormatProfileList(profiles []*profile.Profile, active string) string {
	var b strings.Builder

	b.WriteString(Header("Profiles"))
	b.WriteString("\n")
	for _, p := range profiles {
		marker := "  "
		name := StyleFg.Render(p.Name)
		if p.Name == active {
			marker = StyleGreen.Render("* ")
			name = Bold(p.Name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, name,
			Dim(fmt.Sprintf("(%d topics)", len(p.Categories)))))
	}
	b.WriteString("\n")
	b.WriteString(Dim("Select with --profile or ASTRAL_PROFILE."))
	b.WriteString("\n")

	return b.String()
}

// FormatDataStatus renders per-category availability of the reference data.
func FormatDataStatus(p *profile.Profile, d *dataset.Dataset) string {
	var b strings.Builder

	b.WriteString(Header(p.Name + " data"))
	b.WriteString("\n")
	for _, name := range p.CategoryNames() {
		cat := p.Categories[name]
		if doc, ok := d.Category(name); ok {
			b.WriteString(fmt.Sprintf("  %s %-20s %s\n",
				StyleGreen.Render("✓"), cat.Title(name),
				Dim(fmt.Sprintf("%d records", recordCount(cat, doc)))))
		} else {
			b.WriteString(fmt.Sprintf("  %s %-20s %s\n",
				StyleRed.Render("✗"), cat.Title(name), Dim("missing")))
		}
	}

	return b.String()
}

// recordCount counts the records a lookup would iterate, unwrapping the
// list_key wrapper where the category declares one.
func recordCount(cat profile.Category, doc *dataset.Value) int {
	if cat.Shape == profile.ShapeList && cat.ListKey != "" {
		if inner, ok := doc.Field(cat.ListKey); ok {
			return inner.Len()
		}
		return 0
	}
	return doc.Len()
}

func topicLabels(p *profile.Profile) []string {
	names := p.CategoryNames()
	labels := make([]string, 0, len(names))
	for _, name := range names {
		labels = append(labels, p.Categories[name].Title(name))
	}
	return labels
}
