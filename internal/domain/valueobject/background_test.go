package valueobject

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#fff":                  {255, 255, 255, 255},
		"#F5E6E0":               {0xf5, 0xe6, 0xe0, 255},
		"#00000080":             {0, 0, 0, 0x80},
		"rgb(10, 20, 30)":       {10, 20, 30, 255},
		"rgba(255,255,255,0.5)": {255, 255, 255, 128},
		"white":                 {255, 255, 255, 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"#12", "rgb(300,0,0)", "chartreuse", "#gggggg"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, domain.ErrInvalidColor, in)
	}
}

func TestParseBackground(t *testing.T) {
	t.Run("image references", func(t *testing.T) {
		for _, ref := range []string{
			"data:image/png;base64,AAAA",
			"https://cdn.example.com/bg.jpg",
			"s3://backgrounds/paper.png",
			"/backgrounds/paper.png",
		} {
			bg, err := ParseBackground(ref)
			require.NoError(t, err)
			assert.True(t, bg.IsImage(), ref)
			assert.Equal(t, ref, bg.String())
		}
	})

	t.Run("color", func(t *testing.T) {
		bg, err := ParseBackground(DefaultBackground)
		require.NoError(t, err)
		assert.False(t, bg.IsImage())
		assert.Equal(t, "#f5e6e0", bg.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseBackground("not-a-color")
		assert.ErrorIs(t, err, domain.ErrInvalidBackground)

		_, err = ParseBackground("")
		assert.ErrorIs(t, err, domain.ErrInvalidBackground)
	})
}

func TestParsePhotoShape(t *testing.T) {
	for _, s := range PhotoShapes {
		got, err := ParsePhotoShape(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParsePhotoShape("star")
	assert.ErrorIs(t, err, domain.ErrInvalidShape)
}
