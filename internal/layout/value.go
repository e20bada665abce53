package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size from content
	UnitFixed               // Absolute cells
	UnitPercent             // Percentage of the parent's available space
)

// Value is a dimension: fixed, a percentage, or auto (content-sized).
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value sized from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns an absolute Value of n cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value on a 0-100 scale (50.0 = half the available space).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// IsAuto reports whether the value must be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve returns the concrete size for the given available space,
// or fallback for auto values.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}
