package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Shape describes how a category document stores its records.
const (
	ShapeList = "list" // a sequence of record objects, optionally under a wrapper key
	ShapeMap  = "map"  // an object keyed by entity name
)

// Profile is one deployment of the chat engine. Everything that varied
// between the original widget variants lives here as data: persona, domain
// keywords, route priority, per-category lookup and formatting settings.
type Profile struct {
	Name     string `yaml:"name"`
	Persona  string `yaml:"persona"`
	Greeting string `yaml:"greeting"`
	Apology  string `yaml:"apology"`

	// Keywords is the permissive domain test: a message containing any of
	// these (case-insensitive substring, no word boundaries) is answered
	// locally instead of being forwarded to the completion service.
	Keywords []string `yaml:"keywords"`

	// Routes is the ordered sub-category dispatch. First matching group
	// wins; order is significant and deliberately configurable because the
	// original variants disagreed on it.
	Routes []Route `yaml:"routes"`

	// DefaultCategory is used when no route group matches a domain message.
	// Empty means fall through to DefaultReply (or full-text search when
	// FulltextFallback is set).
	DefaultCategory string `yaml:"default_category"`
	DefaultReply    string `yaml:"default_reply"`

	// FulltextFallback enables the scored full-text search over all
	// categories when routing finds no group.
	FulltextFallback bool `yaml:"fulltext_fallback"`

	// ScoreThreshold is the strict lower bound for full-text match scores.
	// Nil means the 0.5 default. Kept configurable; the constant has no
	// documented justification in the source material.
	ScoreThreshold *float64 `yaml:"score_threshold"`

	Categories map[string]Category `yaml:"categories"`
}

// Route binds a keyword group to a category.
type Route struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Category configures lookup and rendering for one slice of reference data.
type Category struct {
	Shape      string `yaml:"shape"`
	ListKey    string `yaml:"list_key"`    // wrapper key holding the record list, optional
	MatchField string `yaml:"match_field"` // identifying field tested against the message
	Format     string `yaml:"format"`      // template name; unregistered names fall back to a generic dump
	Label      string `yaml:"label"`
	Icon       string `yaml:"icon"`

	Unavailable string `yaml:"unavailable"`
	NoMatch     string `yaml:"no_match"`

	// Overview categories answer with a capped summary list when no
	// specific entity is named in the message.
	Overview      bool `yaml:"overview"`
	OverviewLimit int  `yaml:"overview_limit"`
}

const (
	defaultScoreThreshold = 0.5
	defaultOverviewLimit  = 5
)

// Threshold returns the effective full-text score threshold.
func (p *Profile) Threshold() float64 {
	if p.ScoreThreshold != nil {
		return *p.ScoreThreshold
	}
	return defaultScoreThreshold
}

// CategoryNames returns the declared category names, sorted for
// deterministic iteration.
func (p *Profile) CategoryNames() []string {
	names := make([]string, 0, len(p.Categories))
	for name := range p.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Limit returns the effective overview cap for a category.
func (c Category) Limit() int {
	if c.OverviewLimit > 0 {
		return c.OverviewLimit
	}
	return defaultOverviewLimit
}

// Title returns the human label for a category, falling back to the
// category key with underscores spaced out.
func (c Category) Title(name string) string {
	if c.Label != "" {
		return c.Label
	}
	return strings.ReplaceAll(name, "_", " ")
}

// UnavailableMessage is the fixed reply for a category whose data failed
// to load.
func (c Category) UnavailableMessage(name string) string {
	if c.Unavailable != "" {
		return c.Unavailable
	}
	return fmt.Sprintf("%s data not available.", c.Title(name))
}

// NoMatchMessage is the guidance prompt when no record matched.
func (c Category) NoMatchMessage(name string) string {
	if c.NoMatch != "" {
		return c.NoMatch
	}
	return fmt.Sprintf("Please name a specific entry from %s.", c.Title(name))
}

// Validate checks profile consistency. Called by every loader before the
// profile is handed to the engine.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if strings.TrimSpace(p.Persona) == "" {
		return fmt.Errorf("profile %q: persona is required", p.Name)
	}
	if len(p.Keywords) == 0 {
		return fmt.Errorf("profile %q: at least one domain keyword is required", p.Name)
	}
	if p.ScoreThreshold != nil && (*p.ScoreThreshold < 0 || *p.ScoreThreshold > 1) {
		return fmt.Errorf("profile %q: score_threshold must be within [0,1], got %v", p.Name, *p.ScoreThreshold)
	}

	for name, cat := range p.Categories {
		switch cat.Shape {
		case ShapeList:
			if cat.MatchField == "" && !cat.Overview {
				return fmt.Errorf("profile %q: category %q: list shape requires match_field or overview", p.Name, name)
			}
		case ShapeMap:
			// map categories match on keys, no field needed
		default:
			return fmt.Errorf("profile %q: category %q: shape must be %q or %q, got %q",
				p.Name, name, ShapeList, ShapeMap, cat.Shape)
		}
	}

	for i, route := range p.Routes {
		if len(route.Keywords) == 0 {
			return fmt.Errorf("profile %q: route %d has no keywords", p.Name, i)
		}
		if _, ok := p.Categories[route.Category]; !ok {
			return fmt.Errorf("profile %q: route %d references undeclared category %q", p.Name, i, route.Category)
		}
	}

	if p.DefaultCategory != "" {
		if _, ok := p.Categories[p.DefaultCategory]; !ok {
			return fmt.Errorf("profile %q: default_category %q is not declared", p.Name, p.DefaultCategory)
		}
	}

	return nil
}
