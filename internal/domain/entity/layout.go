package entity

type LayoutType string

const (
	LayoutStrip2 LayoutType = "strip-2"
	LayoutStrip4 LayoutType = "strip-4"
	LayoutGrid4  LayoutType = "grid-4"
	LayoutGrid6  LayoutType = "grid-6"
)

// Grid returns the column and row count of the slot grid.
func (t LayoutType) Grid() (cols, rows int) {
	switch t {
	case LayoutStrip2:
		return 1, 2
	case LayoutStrip4:
		return 1, 4
	case LayoutGrid4:
		return 2, 2
	case LayoutGrid6:
		return 2, 3
	default:
		return 0, 0
	}
}

func (t LayoutType) IsValid() bool {
	cols, _ := t.Grid()
	return cols > 0
}

type Layout struct {
	ID           string
	Type         LayoutType
	Title        string
	Description  string
	PhotoCount   int
	AspectRatio  float64
	PreviewImage string
}

func (l *Layout) Grid() (cols, rows int) {
	return l.Type.Grid()
}
