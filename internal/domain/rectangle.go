package domain

// Rectangle holds the two dimensions of a rectangle.
//
// The zero value is a 0x0 rectangle. Dimensions are stored as given: negative, zero and
// non-finite values are accepted and flow through Area and Perimeter unchanged.
type Rectangle struct {
	Length float64
	Width  float64
}

// SetDimensions replaces both dimensions.
func (r *Rectangle) SetDimensions(length, width float64) {
	r.Length = length
	r.Width = width
}

// Area returns length * width.
func (r *Rectangle) Area() float64 {
	return r.Length * r.Width
}

// Perimeter returns 2 * (length + width).
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.Length + r.Width)
}
