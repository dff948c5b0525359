package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Abbey of Gethsemani", "abbey-of-gethsemani"},
		{"type label", "Zen monastery", "zen-monastery"},
		{"collapses separator runs", "Work  --  exchange!!", "work-exchange"},
		{"trims leading and trailing", "  -Silent retreat- ", "silent-retreat"},
		{"keeps digits", "Vipassana 10-day course", "vipassana-10-day-course"},
		{"folds accents", "Abadía de Montserrat", "abadia-de-montserrat"},
		{"folded letter is not a separator", "Café Zen", "cafe-zen"},
		{"folds ligatures", "Ærø Øko Straße", "aero-oko-strasse"},
		{"apostrophes separate", "Kripalu's Center", "kripalu-s-center"},
		{"empty input", "", ""},
		{"only punctuation", "!!! --- ???", ""},
		{"already a slug", "plum-village", "plum-village"},
		{"non-latin script is a separator", "Wat 寺 Pah Nanachat", "wat-pah-nanachat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Abbey of Gethsemani",
		"  Zen -- Monastery ",
		"Café & Ashram (Rishikesh)",
		"Œuvre d'Art",
		"---",
		"a",
		"Tushita Meditation Centre, Dharamsala",
		"İstanbul Sufi Lodge",
	}

	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "Make must be idempotent for %q", in)
	}
}

func TestMake_OutputAlphabet(t *testing.T) {
	t.Parallel()

	out := Make("Sacred Valley — Ayahuasca & Yoga Retreat (Peru) 2025")
	assert.Equal(t, "sacred-valley-ayahuasca-yoga-retreat-peru-2025", out)
	assert.NotContains(t, out, "--")
	assert.NotEqual(t, '-', rune(out[0]))
	assert.NotEqual(t, '-', rune(out[len(out)-1]))
}
