package value

// Bool is an acquirable cell holding bool values.
type Bool struct {
	*Cell[bool]
}

// NewBool creates a bool cell, optionally with an initial value.
func NewBool(initial ...bool) *Bool {
	return &Bool{Cell: NewCell[bool](initial...)}
}
