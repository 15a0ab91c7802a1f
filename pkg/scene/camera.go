package scene

import (
	"math"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// fovEpsilon keeps the field of view inside the open interval (0, 180).
// core.Epsilon is too small to survive float32 rounding next to 180.
const fovEpsilon core.Real = 1e-3

// Camera generates primary rays from a position, three rotation angles and
// a horizontal field of view. It looks down -Z in its local frame.
type Camera struct {
	Position core.Vector

	pan, tilt, roll core.Real // degrees
	fov             core.Real // degrees

	matrix    core.Matrix
	hasMatrix bool
}

// NewCamera creates a camera at the given position with no rotation and a
// 90 degree field of view.
func NewCamera(position core.Vector) Camera {
	return Camera{Position: position, fov: 90}
}

// SetPan sets the pan angle in degrees
func (c *Camera) SetPan(degrees core.Real) {
	c.pan = degrees
	c.hasMatrix = false
}

// SetTilt sets the tilt angle in degrees, clamped to [-90, 90]
func (c *Camera) SetTilt(degrees core.Real) {
	c.tilt = clamp(degrees, -90, 90)
	c.hasMatrix = false
}

// SetRoll sets the roll angle in degrees
func (c *Camera) SetRoll(degrees core.Real) {
	c.roll = degrees
	c.hasMatrix = false
}

// SetFOV sets the horizontal field of view in degrees, clamped into the
// open interval (0, 180).
func (c *Camera) SetFOV(degrees core.Real) {
	c.fov = clamp(degrees, fovEpsilon, 180-fovEpsilon)
}

// FOV returns the horizontal field of view in degrees
func (c *Camera) FOV() core.Real {
	return c.fov
}

// SetMatrix installs an explicit orientation matrix, overriding the
// pan/tilt/roll angles. Scene files carry the orientation this way.
func (c *Camera) SetMatrix(m core.Matrix) {
	c.matrix = m
	c.hasMatrix = true
}

// GetMatrix returns the camera orientation: roll, then tilt, then pan,
// applied in that order to the local forward frame.
func (c *Camera) GetMatrix() core.Matrix {
	if c.hasMatrix {
		return c.matrix
	}
	m := core.IdentityMatrix()
	m = core.RotationMatrix(core.Radians(c.roll), core.NewVector(0, 0, 1)).Mul(m)
	m = core.RotationMatrix(core.Radians(c.tilt), core.NewVector(1, 0, 0)).Mul(m)
	m = core.RotationMatrix(core.Radians(c.pan), core.NewVector(0, 1, 0)).Mul(m)
	return m
}

// GenerateRay returns the primary ray through the center of pixel (x, y) on
// a width-by-height image.
func (c *Camera) GenerateRay(width, height, x, y int) core.Ray {
	aspect := core.Real(height) / core.Real(width)
	scale := core.Real(math.Tan(float64(core.Radians(c.fov)) * 0.5))

	px := (2*(core.Real(x)+0.5)/core.Real(width) - 1) * scale
	py := (1 - 2*(core.Real(y)+0.5)/core.Real(height)) * scale * aspect

	dir := c.GetMatrix().MulVec(core.NewVector(px, py, -1).Normalize())
	return core.Ray{Origin: c.Position, Dir: dir}
}

func clamp(v, lo, hi core.Real) core.Real {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
