package value

// Float64 is an acquirable cell holding float64 values.
type Float64 struct {
	*Cell[float64]
}

// NewFloat64 creates a float64 cell, optionally with an initial value.
func NewFloat64(initial ...float64) *Float64 {
	return &Float64{Cell: NewCell[float64](initial...)}
}
