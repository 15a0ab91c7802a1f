package core

import (
	"math"
	"testing"
)

const tolerance = 1e-5

func almostEqual(a, b Real) bool {
	return math.Abs(float64(a-b)) < tolerance
}

func vecAlmostEqual(a, b Vector) bool {
	return a.Subtract(b).Length() < tolerance
}

func TestVector_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		dir      Vector
		normal   Vector
		expected Vector
	}{
		{
			name:     "Head-on reflection reverses the direction",
			dir:      NewVector(0, 0, -1),
			normal:   NewVector(0, 0, 1),
			expected: NewVector(0, 0, 1),
		},
		{
			name:     "45 degree incidence mirrors across the normal",
			dir:      NewVector(1, -1, 0).Normalize(),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0).Normalize(),
		},
		{
			name:     "Grazing direction is unchanged",
			dir:      NewVector(1, 0, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dir.Reflect(tt.normal)
			if !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}

			// Mirror property: the normal component flips, the length stays
			if !almostEqual(got.Dot(tt.normal), -tt.dir.Dot(tt.normal)) {
				t.Errorf("Normal component not mirrored: %v vs %v",
					got.Dot(tt.normal), tt.dir.Dot(tt.normal))
			}
			if !almostEqual(got.Length(), tt.dir.Length()) {
				t.Errorf("Length changed: %v -> %v", tt.dir.Length(), got.Length())
			}
		})
	}
}

func TestVector_Refract(t *testing.T) {
	normal := NewVector(0, 1, 0)

	t.Run("Snell's law holds entering a denser medium", func(t *testing.T) {
		ior := Real(1.0 / 1.5)
		incoming := NewVector(1, -1, 0).Normalize()

		refracted, tir := incoming.Refract(normal, ior)
		if tir {
			t.Fatal("Unexpected total internal reflection")
		}

		if !almostEqual(refracted.Length(), 1) {
			t.Errorf("Refracted direction not unit length: %v", refracted.Length())
		}
		// Transmitted ray continues into the surface
		if refracted.Dot(normal) >= 0 {
			t.Errorf("Refracted direction does not cross the interface: %v", refracted)
		}

		sinIn := Real(math.Sqrt(float64(1 - incoming.Dot(normal)*incoming.Dot(normal))))
		sinOut := Real(math.Sqrt(float64(1 - refracted.Dot(normal)*refracted.Dot(normal))))
		if !almostEqual(sinOut, ior*sinIn) {
			t.Errorf("Snell's law violated: sin_t=%v, ior*sin_i=%v", sinOut, ior*sinIn)
		}
	})

	t.Run("Shallow exit from a denser medium reflects internally", func(t *testing.T) {
		ior := Real(1.5)
		incoming := NewVector(1, -0.2, 0).Normalize()

		got, tir := incoming.Refract(normal, ior)
		if !tir {
			t.Fatal("Expected total internal reflection")
		}
		if !vecAlmostEqual(got, incoming.Reflect(normal)) {
			t.Errorf("TIR should return the reflection, got %v", got)
		}
	})

	t.Run("Matched media pass the ray straight through", func(t *testing.T) {
		incoming := NewVector(1, -1, 0).Normalize()
		got, tir := incoming.Refract(normal, 1)
		if tir {
			t.Fatal("Unexpected total internal reflection")
		}
		if !vecAlmostEqual(got, incoming) {
			t.Errorf("Expected %v, got %v", incoming, got)
		}
	})
}

func TestVector_MaxDimension(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		expected int
	}{
		{"X dominates", NewVector(-5, 2, 3), 0},
		{"Y dominates", NewVector(1, 4, 3), 1},
		{"Z dominates", NewVector(1, 2, -6), 2},
		{"Ties prefer the earlier axis", NewVector(2, 2, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.MaxDimension(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestVector_Normalize(t *testing.T) {
	v := NewVector(3, 4, 0).Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Expected unit length, got %v", v.Length())
	}

	zero := Vector{}.Normalize()
	if zero != (Vector{}) {
		t.Errorf("Zero vector should normalize to itself, got %v", zero)
	}
}

func TestVector_CrossOrthogonality(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(-2, 0.5, 4)
	c := a.Cross(b)

	if !almostEqual(c.Dot(a), 0) || !almostEqual(c.Dot(b), 0) {
		t.Errorf("Cross product not orthogonal to its operands: %v", c)
	}
}
