package render

import (
	"math"

	"distant-sky/internal/core"
	"distant-sky/internal/sky"
)

// Camera maps horizon angles and sky directions onto a viewport.
type Camera struct {
	// Yaw is the horizon angle at the center of the view.
	Yaw float64
	// Pitch raises the horizon line, in radians.
	Pitch float64
	// FOV is the horizontal field of view in radians.
	FOV    float64
	Width  int
	Height int
}

// NewCamera returns a level camera with a 90 degree field of view.
func NewCamera(w, h int) Camera {
	return Camera{FOV: math.Pi / 2, Width: w, Height: h}
}

func (c Camera) focal() float64 {
	fov := c.FOV
	if fov <= 0 || fov >= math.Pi {
		fov = math.Pi / 2
	}
	return float64(c.Width) / 2 / math.Tan(fov/2)
}

// HorizonY is the screen row of the horizon line.
func (c Camera) HorizonY() float64 {
	return float64(c.Height)/2 + math.Tan(c.Pitch)*c.focal()
}

// PixelScale is the integer texture magnification for the viewport width.
func (c Camera) PixelScale() int {
	s := c.Width / sky.IdentityDim
	if s < 1 {
		return 1
	}
	return s
}

// ProjectAngle returns the screen column of a horizon angle. Angles that
// increase turn the view to the left. ok is false outside the field of view.
func (c Camera) ProjectAngle(angle float64) (x float64, ok bool) {
	d := WrapAngle(angle - c.Yaw)
	if math.Abs(d) >= math.Pi/2 {
		return 0, false
	}
	x = float64(c.Width)/2 - math.Tan(d)*c.focal()
	return x, x >= -float64(c.Width)/2 && x <= float64(c.Width)*1.5
}

// ProjectDirection returns the screen position of a direction on the sky
// sphere. Y is up; the horizontal angle is measured in the XZ plane.
func (c Camera) ProjectDirection(v core.Vec3) (x, y float64, ok bool) {
	n := v.Normalized()
	if n.Length() == 0 {
		return 0, 0, false
	}
	azimuth := math.Atan2(n.Z, n.X)
	x, ok = c.ProjectAngle(azimuth)
	if !ok {
		return 0, 0, false
	}
	elevation := math.Asin(math.Max(-1, math.Min(1, n.Y)))
	if elevation >= math.Pi/2-1e-6 {
		elevation = math.Pi/2 - 1e-6
	}
	y = c.HorizonY() - math.Tan(elevation)*c.focal()
	return x, y, true
}

// WrapAngle maps an angle into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
