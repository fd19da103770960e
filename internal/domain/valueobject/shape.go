package valueobject

import (
	"fmt"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

type PhotoShape string

const (
	ShapeRectangle PhotoShape = "rectangle"
	ShapeRounded   PhotoShape = "rounded"
	ShapeCircle    PhotoShape = "circle"
	ShapeHeart     PhotoShape = "heart"
)

var PhotoShapes = []PhotoShape{ShapeRectangle, ShapeRounded, ShapeCircle, ShapeHeart}

func ParsePhotoShape(s string) (PhotoShape, error) {
	for _, shape := range PhotoShapes {
		if string(shape) == s {
			return shape, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidShape, s)
}

func (s PhotoShape) IsValid() bool {
	_, err := ParsePhotoShape(string(s))
	return err == nil
}
