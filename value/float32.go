package value

// Float32 is an acquirable cell holding float32 values.
type Float32 struct {
	*Cell[float32]
}

// NewFloat32 creates a float32 cell, optionally with an initial value.
func NewFloat32(initial ...float32) *Float32 {
	return &Float32{Cell: NewCell[float32](initial...)}
}
