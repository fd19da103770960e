package valueobject

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

type AdjustmentKind string

const (
	AdjustBrightness AdjustmentKind = "brightness"
	AdjustContrast   AdjustmentKind = "contrast"
	AdjustSaturate   AdjustmentKind = "saturate"
	AdjustHueRotate  AdjustmentKind = "hue-rotate"
	AdjustSepia      AdjustmentKind = "sepia"
	AdjustGrayscale  AdjustmentKind = "grayscale"
	AdjustInvert     AdjustmentKind = "invert"
	AdjustOpacity    AdjustmentKind = "opacity"
	AdjustBlur       AdjustmentKind = "blur"
)

// MaxBlurRadius is the largest blur a filter may ask for, in preview pixels.
const MaxBlurRadius = 50

// Adjustment is one typed image operation. Amount is a ratio (1.1 for
// 110%) for the percentage kinds, degrees for hue-rotate and preview
// pixels for blur.
type Adjustment struct {
	Kind   AdjustmentKind
	Amount float64
}

func (a Adjustment) String() string {
	switch a.Kind {
	case AdjustHueRotate:
		return fmt.Sprintf("%s(%sdeg)", a.Kind, formatNumber(a.Amount))
	case AdjustBlur:
		return fmt.Sprintf("%s(%spx)", a.Kind, formatNumber(a.Amount))
	default:
		return fmt.Sprintf("%s(%s%%)", a.Kind, formatNumber(a.Amount*100))
	}
}

// Filter is an ordered chain of adjustments. The chain is applied left to
// right, exactly as written, by both the preview renderer and the exporter.
type Filter []Adjustment

func (f Filter) IsNone() bool {
	return len(f) == 0
}

func (f Filter) String() string {
	if f.IsNone() {
		return "none"
	}
	parts := make([]string, len(f))
	for i, a := range f {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFilter reads CSS filter syntax, e.g. "sepia(50%) contrast(1.2)".
// An empty string and "none" both mean no adjustments.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return Filter{}, nil
	}

	var f Filter
	rest := s
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open <= 0 || closing < open {
			return nil, fmt.Errorf("%w: malformed %q", domain.ErrInvalidFilter, s)
		}

		kind := AdjustmentKind(strings.TrimSpace(rest[:open]))
		arg := strings.TrimSpace(rest[open+1 : closing])

		amount, err := parseAmount(kind, arg)
		if err != nil {
			return nil, err
		}
		f = append(f, Adjustment{Kind: kind, Amount: amount})

		rest = strings.TrimSpace(rest[closing+1:])
	}

	return f, nil
}

func parseAmount(kind AdjustmentKind, arg string) (float64, error) {
	invalid := func() (float64, error) {
		return 0, fmt.Errorf("%w: %s(%s)", domain.ErrInvalidFilter, kind, arg)
	}

	switch kind {
	case AdjustHueRotate:
		return parseAngle(arg, invalid)
	case AdjustBlur:
		v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "px"), 64)
		if err != nil || !(v >= 0 && v <= MaxBlurRadius) {
			return invalid()
		}
		return v, nil
	case AdjustBrightness, AdjustContrast, AdjustSaturate,
		AdjustSepia, AdjustGrayscale, AdjustInvert, AdjustOpacity:
		var v float64
		var err error
		if strings.HasSuffix(arg, "%") {
			v, err = strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
			v /= 100
		} else {
			v, err = strconv.ParseFloat(arg, 64)
		}
		if err != nil || v < 0 {
			return invalid()
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%w: unknown function %q", domain.ErrInvalidFilter, kind)
	}
}

func parseAngle(arg string, invalid func() (float64, error)) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 0.9},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}
	for _, u := range units {
		if strings.HasSuffix(arg, u.suffix) {
			v, err := strconv.ParseFloat(strings.TrimSuffix(arg, u.suffix), 64)
			if err != nil {
				return invalid()
			}
			return v * u.scale, nil
		}
	}
	if arg == "0" {
		return 0, nil
	}
	return invalid()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

type FilterPreset struct {
	Name   string
	Label  string
	Filter Filter
}

func mustFilter(s string) Filter {
	f, err := ParseFilter(s)
	if err != nil {
		panic(err)
	}
	return f
}

// FilterPresets is the fixed catalogue offered by the capture screen.
var FilterPresets = []FilterPreset{
	{Name: "none", Label: "Normal", Filter: Filter{}},
	{Name: "grayscale", Label: "B&W", Filter: mustFilter("grayscale(100%)")},
	{Name: "sepia", Label: "Sepia", Filter: mustFilter("sepia(100%)")},
	{Name: "vintage", Label: "Vintage", Filter: mustFilter("sepia(50%) contrast(90%) brightness(110%)")},
	{Name: "warm", Label: "Warm", Filter: mustFilter("sepia(20%) saturate(140%) hue-rotate(-10deg)")},
	{Name: "cool", Label: "Cool", Filter: mustFilter("saturate(120%) hue-rotate(15deg) brightness(105%)")},
	{Name: "bright", Label: "Bright", Filter: mustFilter("brightness(120%) contrast(105%)")},
	{Name: "dramatic", Label: "Dramatic", Filter: mustFilter("contrast(140%) saturate(120%)")},
	{Name: "faded", Label: "Faded", Filter: mustFilter("contrast(80%) brightness(110%) saturate(70%)")},
	{Name: "vivid", Label: "Vivid", Filter: mustFilter("saturate(180%) contrast(110%)")},
	{Name: "noir", Label: "Noir", Filter: mustFilter("grayscale(100%) contrast(140%) brightness(90%)")},
	{Name: "dreamy", Label: "Dreamy", Filter: mustFilter("blur(1px) brightness(110%) saturate(120%)")},
}

func FilterPresetByName(name string) (FilterPreset, bool) {
	for _, p := range FilterPresets {
		if p.Name == name {
			return p, true
		}
	}
	return FilterPreset{}, false
}
