package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase passthrough", input: "stardew valley", want: "stardew valley"},
		{name: "diacritics stripped", input: "Pokémon Violet", want: "pokemon violet"},
		{name: "edition suffix removed", input: "Nebula Drift: Deluxe Edition", want: "nebula drift"},
		{name: "goty suffix removed", input: "Nebula Drift - Game of the Year Edition", want: "nebula drift"},
		{name: "trademark and punctuation", input: "Nebula™ Drift: Origins!", want: "nebula drift origins"},
		{name: "whitespace collapsed", input: "  Nebula   Drift  ", want: "nebula drift"},
		{name: "numerals kept", input: "Nebula Drift II", want: "nebula drift ii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.input))
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	once := NormalizeTitle("Pokémon™: Deluxe Edition")
	assert.Equal(t, once, NormalizeTitle(once))
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Elvenar Cafe", RemoveDiacritics("Elvenar Café"))
	assert.Equal(t, "uber", RemoveDiacritics("über"))
}
