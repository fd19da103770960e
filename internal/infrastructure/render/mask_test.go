package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

func TestShapeMask(t *testing.T) {
	t.Run("rectangle needs no mask", func(t *testing.T) {
		assert.Nil(t, ShapeMask(valueobject.ShapeRectangle, 100, 50))
	})

	t.Run("circle is the inscribed ellipse", func(t *testing.T) {
		m := ShapeMask(valueobject.ShapeCircle, 200, 100)
		require.NotNil(t, m)

		assert.Equal(t, uint8(255), m.AlphaAt(100, 50).A)
		assert.Equal(t, uint8(255), m.AlphaAt(5, 50).A)
		assert.Zero(t, m.AlphaAt(2, 2).A)
		assert.Zero(t, m.AlphaAt(197, 97).A)
	})

	t.Run("rounded corners", func(t *testing.T) {
		m := ShapeMask(valueobject.ShapeRounded, 200, 100)
		require.NotNil(t, m)

		assert.Zero(t, m.AlphaAt(0, 0).A)
		assert.Equal(t, uint8(255), m.AlphaAt(15, 15).A)
		assert.Equal(t, uint8(255), m.AlphaAt(100, 1).A)
	})

	t.Run("heart stretches to the slot", func(t *testing.T) {
		m := ShapeMask(valueobject.ShapeHeart, 100, 300)
		require.NotNil(t, m)

		assert.Equal(t, uint8(255), m.AlphaAt(50, 150).A)
		assert.Zero(t, m.AlphaAt(50, 10).A)
		assert.Zero(t, m.AlphaAt(2, 295).A)
		assert.Zero(t, m.AlphaAt(97, 295).A)
	})
}
