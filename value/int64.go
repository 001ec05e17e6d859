package value

// Int64 is an acquirable cell holding int64 values.
type Int64 struct {
	*Cell[int64]
}

// NewInt64 creates a int64 cell, optionally with an initial value.
func NewInt64(initial ...int64) *Int64 {
	return &Int64{Cell: NewCell[int64](initial...)}
}
