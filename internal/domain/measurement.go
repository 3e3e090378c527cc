package domain

// Measurement is a snapshot of a rectangle and the values derived from it.
type Measurement struct {
	Length    float64
	Width     float64
	Area      float64
	Perimeter float64
}

func Measure(r *Rectangle) Measurement {
	return Measurement{
		Length:    r.Length,
		Width:     r.Width,
		Area:      r.Area(),
		Perimeter: r.Perimeter(),
	}
}
