package valueobject

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

const DefaultBackground = "#f5e6e0"

type BackgroundKind int

const (
	BackgroundColor BackgroundKind = iota
	BackgroundImage
)

// Background is either a solid color or an image reference. Images are
// always drawn with cover semantics.
type Background struct {
	Kind  BackgroundKind
	Color color.NRGBA
	Ref   string
}

// IsImageRef reports whether s names an image rather than a color.
func IsImageRef(s string) bool {
	return strings.HasPrefix(s, "data:image") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "s3://") ||
		strings.HasPrefix(s, "/")
}

func ParseBackground(s string) (Background, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Background{}, fmt.Errorf("%w: empty", domain.ErrInvalidBackground)
	}

	if IsImageRef(s) {
		return Background{Kind: BackgroundImage, Ref: s}, nil
	}

	c, err := ParseColor(s)
	if err != nil {
		return Background{}, fmt.Errorf("%w: %w", domain.ErrInvalidBackground, err)
	}

	return Background{Kind: BackgroundColor, Color: c}, nil
}

func (b Background) IsImage() bool {
	return b.Kind == BackgroundImage
}

func (b Background) String() string {
	if b.IsImage() {
		return b.Ref
	}
	return HexColor(b.Color)
}

// BackgroundColors is the swatch palette offered next to the color picker.
var BackgroundColors = []string{
	"#FCD8CD",
	"#1E3E62",
	"#52A5CE",
	"#7C3AED",
	"#AFAB23",
	"#876029",
	"#EFCE7B",
	"#EF6F4C",
	"#E11D48",
}
