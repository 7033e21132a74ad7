package engine

import (
	"strings"

	"github.com/astraldesk/astral/internal/profile"
)

// Classifier decides whether a message belongs to the profile's local-data
// domain and, if so, which category should answer it.
type Classifier struct {
	profile *profile.Profile
}

// NewClassifier creates a Classifier for the given profile.
func NewClassifier(p *profile.Profile) *Classifier {
	return &Classifier{profile: p}
}

// InDomain reports whether the message contains any domain keyword.
// The test is a case-insensitive substring check with no word boundaries:
// "horoscopes" matches "horoscope". Deliberately permissive; a false
// positive lands in local lookup, which at worst answers with a guidance
// prompt instead of burning an external call.
func (c *Classifier) InDomain(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range c.profile.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Route picks the category for a domain message by walking the profile's
// route groups in order; the first group with a matching keyword wins.
// When no group matches, the profile's default category applies. ok is
// false only when there is no match and no default.
func (c *Classifier) Route(message string) (category string, ok bool) {
	lower := strings.ToLower(message)
	for _, route := range c.profile.Routes {
		for _, kw := range route.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return route.Category, true
			}
		}
	}
	if c.profile.DefaultCategory != "" {
		return c.profile.DefaultCategory, true
	}
	return "", false
}
