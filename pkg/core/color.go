package core

// Color is a linear RGBA color. Alpha rides along unmodified through all
// mixing operations.
type Color struct {
	R, G, B, A Real
}

// NewColor creates an opaque color
func NewColor(r, g, b Real) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A}
}

// Scale returns the color with RGB channels multiplied by a scalar
func (c Color) Scale(s Real) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Mul returns the component-wise product of two colors (modulation)
func (c Color) Mul(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B, A: c.A}
}
