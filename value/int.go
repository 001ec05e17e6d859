package value

// Int is an acquirable cell holding 32-bit integer values.
type Int struct {
	*Cell[int32]
}

// NewInt creates a 32-bit integer cell, optionally with an initial value.
func NewInt(initial ...int32) *Int {
	return &Int{Cell: NewCell[int32](initial...)}
}
