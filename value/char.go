package value

// Char is an acquirable cell holding a single character as a rune.
type Char struct {
	*Cell[rune]
}

// NewChar creates a character cell, optionally with an initial value.
func NewChar(initial ...rune) *Char {
	return &Char{Cell: NewCell[rune](initial...)}
}
