package geom

import "math"

// MaxCells is the largest dimension, in cells, a Value may resolve to.
const MaxCells = 1 << 20

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the parent's offered space
)

// Value represents a dimension that can be fixed, percentage, or auto.
// The zero Value is Auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto, returns the fallback value. Percentages floor. Results are
// clamped to 0..MaxCells.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return toCells(v.Amount)
	case UnitPercent:
		return toCells(math.Floor(float64(available) * v.Amount / 100.0))
	default:
		return fallback
	}
}

func toCells(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	return int(min(f, MaxCells))
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Valid reports whether the value is a usable dimension: for fixed and
// percent units the amount must lie in 0..MaxCells.
func (v Value) Valid() bool {
	if v.Unit == UnitAuto {
		return true
	}
	if math.IsNaN(v.Amount) || math.IsInf(v.Amount, 0) {
		return false
	}
	return v.Amount >= 0 && v.Amount <= MaxCells
}
