package geom

// Axis is a linear container's main flow direction.
type Axis uint8

const (
	AxisColumn Axis = iota // Children flow top-to-bottom
	AxisRow                // Children flow left-to-right
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "column"
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisRow {
		return AxisColumn
	}
	return AxisRow
}

// Main returns the component of s along the axis.
func (a Axis) Main(s Size) int {
	if a == AxisRow {
		return s.Width
	}
	return s.Height
}

// CrossOf returns the component of s across the axis.
func (a Axis) CrossOf(s Size) int {
	if a == AxisRow {
		return s.Height
	}
	return s.Width
}

// Compose builds a Size from main and cross components.
func (a Axis) Compose(main, cross int) Size {
	if a == AxisRow {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}
