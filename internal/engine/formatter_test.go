package engine

import (
	"testing"

	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItem(t *testing.T, doc string) Item {
	t.Helper()
	v, err := dataset.Decode([]byte(doc))
	require.NoError(t, err)
	return Item{Value: v}
}

func TestFormatZodiacRecord(t *testing.T) {
	cat := profile.Category{Format: "zodiac", Icon: "♑"}
	it := decodeItem(t, `{"name":"Aries","period":"Mar 21 - Apr 19","traits":["bold","energetic"],"element":"Fire","planet":"Mars"}`)

	out := Format(cat, "zodiac_signs", []Item{it})
	assert.Equal(t, "♑ Aries (Mar 21 - Apr 19)\nTraits: bold, energetic\nElement: Fire, Ruling Planet: Mars", out)
}

func TestFormatZodiacAcceptsAlternateFieldNames(t *testing.T) {
	cat := profile.Category{Format: "zodiac", Icon: "♈"}
	it := Item{Key: "aries"}
	v, err := dataset.Decode([]byte(`{"period":"Mar 21 - Apr 19","characteristics":["bold","pioneering"],"element":"Fire","ruling_planet":"Mars"}`))
	require.NoError(t, err)
	it.Value = v

	out := Format(cat, "zodiac_signs", []Item{it})
	assert.Contains(t, out, "Aries (Mar 21 - Apr 19)")
	assert.Contains(t, out, "Traits: bold, pioneering")
	assert.Contains(t, out, "Ruling Planet: Mars")
}

func TestFormatMissingFieldRendersPlaceholder(t *testing.T) {
	cat := profile.Category{Format: "zodiac", Icon: "♑"}
	it := decodeItem(t, `{"name":"Aries"}`)

	out := Format(cat, "zodiac_signs", []Item{it})
	assert.Contains(t, out, "(not available)")
	assert.NotContains(t, out, "undefined")
}

func TestFormatHoroscopeShapes(t *testing.T) {
	cat := profile.Category{Format: "horoscope", Icon: "🔮"}

	simple := Item{Key: "aries"}
	v, err := dataset.Decode([]byte(`{"prediction":"Bold moves pay off."}`))
	require.NoError(t, err)
	simple.Value = v

	out := Format(cat, "daily_horoscope", []Item{simple})
	assert.Equal(t, "🔮 Aries Horoscope for Today:\nBold moves pay off.", out)

	detailed := Item{Key: "leo"}
	v, err = dataset.Decode([]byte(`{"love":"Warm.","career":"Visible.","health":"Stretch.","advice":"Share."}`))
	require.NoError(t, err)
	detailed.Value = v

	out = Format(cat, "daily_horoscope", []Item{detailed})
	assert.Contains(t, out, "- Love: Warm.")
	assert.Contains(t, out, "- Advice: Share.")
}

func TestFormatTermsSingleAndList(t *testing.T) {
	cat := profile.Category{Format: "terms", Icon: "📖", Label: "Glossary"}
	a := decodeItem(t, `{"term":"ascendant","definition":"the rising sign"}`)
	b := decodeItem(t, `{"word":"lagna","meaning":"the ascendant"}`)

	out := Format(cat, "astro_terms", []Item{a})
	assert.Equal(t, "📖 ascendant: the rising sign", out)

	out = Format(cat, "astro_terms", []Item{a, b})
	assert.Contains(t, out, "📖 Glossary:")
	assert.Contains(t, out, "- ascendant: the rising sign")
	assert.Contains(t, out, "- lagna: the ascendant")
}

func TestFormatHolidaysOptionalType(t *testing.T) {
	cat := profile.Category{Format: "holidays", Icon: "📅", Label: "Company Holidays"}
	with := decodeItem(t, `{"date":"Dec 24","name":"Christmas Eve","type":"half-day"}`)
	without := decodeItem(t, `{"date":"Jan 1","name":"New Year's Day"}`)

	out := Format(cat, "holidays", []Item{with, without})
	assert.Contains(t, out, "- Dec 24: Christmas Eve (half-day)")
	assert.Contains(t, out, "- Jan 1: New Year's Day")
	assert.NotContains(t, out, "New Year's Day (")
}

func TestFormatRemediesListAndMapShapes(t *testing.T) {
	cat := profile.Category{Format: "remedies", Icon: "🕉", Label: "Suggested Remedies"}

	plain := Item{Key: "career"}
	v, err := dataset.Decode([]byte(`["Chant daily","Wear yellow on Thursdays"]`))
	require.NoError(t, err)
	plain.Value = v

	out := Format(cat, "remedies", []Item{plain})
	assert.Contains(t, out, "🕉 Suggested Remedies:")
	assert.Contains(t, out, "- Chant daily")

	rich := Item{Key: "shani dosha"}
	v, err = dataset.Decode([]byte(`{"remedies":["Feed crows"],"mantra":"Om Sham Shanicharaya Namah"}`))
	require.NoError(t, err)
	rich.Value = v

	out = Format(cat, "remedies", []Item{rich})
	assert.Contains(t, out, "Issue: Shani Dosha")
	assert.Contains(t, out, "- Remedies: Feed crows")
	assert.Contains(t, out, "- Mantra: Om Sham Shanicharaya Namah")
}

func TestFormatBenefitsEntry(t *testing.T) {
	cat := profile.Category{Format: "benefits", Icon: "💼"}
	it := Item{Key: "health insurance"}
	v, err := dataset.Decode([]byte(`{"summary":"Coverage from day one.","details":["85% of premiums paid","Open enrollment in November"]}`))
	require.NoError(t, err)
	it.Value = v

	out := Format(cat, "benefits", []Item{it})
	assert.Equal(t, "💼 Health Insurance: Coverage from day one.\n- 85% of premiums paid\n- Open enrollment in November", out)
}

func TestFormatUnknownTemplateFallsBackToDump(t *testing.T) {
	cat := profile.Category{Format: "no_such_template", Label: "Mystery"}
	it := decodeItem(t, `{"alpha":"one","beta":{"gamma":"two"}}`)

	out := Format(cat, "mystery", []Item{it})
	assert.Contains(t, out, "Mystery:")
	assert.Contains(t, out, "alpha: one")
	assert.Contains(t, out, "gamma: two")
}

func TestFormatCapitalize(t *testing.T) {
	assert.Equal(t, "Shani Dosha", capitalize("shani dosha"))
	assert.Equal(t, "It Policies", capitalize("it policies"))
}
