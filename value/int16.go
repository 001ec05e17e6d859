package value

// Int16 is an acquirable cell holding int16 values.
type Int16 struct {
	*Cell[int16]
}

// NewInt16 creates a int16 cell, optionally with an initial value.
func NewInt16(initial ...int16) *Int16 {
	return &Int16{Cell: NewCell[int16](initial...)}
}
