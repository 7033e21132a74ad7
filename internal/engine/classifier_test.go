package engine

import (
	"testing"

	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		Name:    "testbot",
		Persona: "You are a test assistant.",
		Apology: "⚠️ Sorry, something went wrong.",
		Keywords: []string{
			"zodiac", "horoscope", "festival", "sign", "aries", "leo", "pisces",
		},
		Routes: []profile.Route{
			{Category: "daily_horoscope", Keywords: []string{"horoscope", "today"}},
			{Category: "festivals", Keywords: []string{"festival"}},
			{Category: "zodiac_signs", Keywords: []string{"zodiac", "sign"}},
		},
		DefaultCategory: "zodiac_signs",
		Categories: map[string]profile.Category{
			"zodiac_signs": {
				Shape: profile.ShapeList, ListKey: "signs", MatchField: "name",
				Format: "zodiac", Label: "Zodiac Signs", Icon: "♑",
				Unavailable: "♈ Zodiac data not available.",
				NoMatch:     "Please specify a zodiac sign (e.g., Aries, Leo, Pisces).",
			},
			"daily_horoscope": {
				Shape: profile.ShapeMap, Format: "horoscope", Label: "Horoscope", Icon: "🔮",
				Unavailable: "🔮 Horoscope data not available.",
				NoMatch:     "Please specify your zodiac sign for today's horoscope.",
			},
			"festivals": {
				Shape: profile.ShapeList, ListKey: "festivals", MatchField: "name",
				Format: "festivals", Label: "Upcoming Festivals", Icon: "🌙",
				Overview:    true,
				Unavailable: "🎉 Festival data not available.",
			},
			"holidays": {
				Shape: profile.ShapeList, ListKey: "holidays", MatchField: "name",
				Format: "holidays", Label: "Holidays", Icon: "📅",
				Overview: true,
			},
		},
	}
}

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d := dataset.New()

	zodiac, err := dataset.Decode([]byte(`{"signs":[
		{"name":"Aries","period":"Mar 21 - Apr 19","traits":["bold","energetic"],"element":"Fire","planet":"Mars"},
		{"name":"Leo","period":"Jul 23 - Aug 22","traits":["confident","generous"],"element":"Fire","planet":"Sun"}
	]}`))
	require.NoError(t, err)
	d.Put("zodiac_signs", zodiac)

	horoscope, err := dataset.Decode([]byte(`{
		"Aries":{"prediction":"A good day for bold moves."},
		"Leo":{"prediction":"The spotlight finds you."}
	}`))
	require.NoError(t, err)
	d.Put("daily_horoscope", horoscope)

	festivals, err := dataset.Decode([]byte(`{"festivals":[
		{"name":"Holi","date":"Mar 14","significance":"colors"},
		{"name":"Diwali","date":"Oct 20","significance":"lights"},
		{"name":"Navaratri","date":"Sep 22","significance":"nine nights"},
		{"name":"Onam","date":"Sep 5","significance":"harvest"},
		{"name":"Pongal","date":"Jan 15","significance":"harvest"},
		{"name":"Lohri","date":"Jan 13","significance":"bonfire"}
	]}`))
	require.NoError(t, err)
	d.Put("festivals", festivals)

	// "holidays" is declared in the profile but deliberately not loaded.
	return d
}

func TestInDomainIsCaseInsensitive(t *testing.T) {
	c := NewClassifier(testProfile())

	assert.True(t, c.InDomain("I love ARIES"))
	assert.True(t, c.InDomain("i love aries"))
	assert.False(t, c.InDomain("what's the weather like"))
}

func TestInDomainMatchesSubstrings(t *testing.T) {
	c := NewClassifier(testProfile())

	// No word-boundary enforcement: "horoscopes" contains "horoscope".
	assert.True(t, c.InDomain("show me horoscopes"))
	// "design" contains "sign"; the keyword test has no word boundaries.
	assert.True(t, c.InDomain("I study design"))
}

func TestRouteFirstMatchWins(t *testing.T) {
	c := NewClassifier(testProfile())

	// "zodiac" and "horoscope" both appear; the horoscope group is checked
	// first, so it wins.
	cat, ok := c.Route("zodiac horoscope please")
	require.True(t, ok)
	assert.Equal(t, "daily_horoscope", cat)

	cat, ok = c.Route("tell me about the holi festival")
	require.True(t, ok)
	assert.Equal(t, "festivals", cat)
}

func TestRouteFallsBackToDefaultCategory(t *testing.T) {
	c := NewClassifier(testProfile())

	cat, ok := c.Route("tell me about aries")
	require.True(t, ok)
	assert.Equal(t, "zodiac_signs", cat)
}

func TestRouteNoDefault(t *testing.T) {
	p := testProfile()
	p.DefaultCategory = ""
	c := NewClassifier(p)

	_, ok := c.Route("tell me about aries")
	assert.False(t, ok)
}
