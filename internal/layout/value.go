package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Width distributed from the container's remaining space
	UnitPixels              // Absolute pixels
	UnitPercent             // Percentage of the container width
)

// Value represents a width that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value whose width is computed by the flex distribution.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Pixels returns a Value representing an absolute number of pixels.
func Pixels(n int) Value {
	return Value{Amount: float64(n), Unit: UnitPixels}
}

// Percent returns a Value representing a percentage of the container width.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the pixel width given the container width.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(container, fallback int) int {
	switch v.Unit {
	case UnitPixels:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(container) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value takes part in flex distribution.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String renders the value in the same textual form ParseWidth accepts.
func (v Value) String() string {
	switch v.Unit {
	case UnitPixels:
		return formatAmount(v.Amount) + "px"
	case UnitPercent:
		return formatAmount(v.Amount) + "%"
	default:
		return ""
	}
}
