package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

var (
	origin = mgl64.Vec3{0, 0, 0}
	worldY = mgl64.Vec3{0, 1, 0}
)

// Lens is a perspective projection over a pixel viewport
type Lens struct {
	FOV    float64 // Vertical, degrees
	Near   float64
	Far    float64
	Width  int
	Height int
}

// NewLens returns the default lens over a 1x1 viewport
func NewLens() Lens {
	return Lens{
		FOV:    parameter.CameraFOV,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
		Width:  1,
		Height: 1,
	}
}

// SetViewport updates the pixel size and therefore the aspect ratio
func (l *Lens) SetViewport(width, height int) {
	l.Width = max(1, width)
	l.Height = max(1, height)
}

// Aspect returns width over height
func (l Lens) Aspect() float64 {
	return float64(max(1, l.Width)) / float64(max(1, l.Height))
}

// View returns the look-at-origin matrix for eye
func (l Lens) View(eye mgl64.Vec3) mgl64.Mat4 {
	up := worldY
	if n := eye.Len(); n > 0 && math.Abs(eye.Y()/n) > 0.9999 {
		// Straight above or below the origin, Y cannot serve as up
		up = mgl64.Vec3{0, 0, -math.Copysign(1, eye.Y())}
	}
	return mgl64.LookAtV(eye, origin, up)
}

// Projection returns the perspective matrix
func (l Lens) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(l.FOV), l.Aspect(), l.Near, l.Far)
}

// ViewProjection combines projection and view for eye
func (l Lens) ViewProjection(eye mgl64.Vec3) mgl64.Mat4 {
	return l.Projection().Mul4(l.View(eye))
}

// Projector caches the combined matrix for a frame of Project calls
type Projector struct {
	vp     mgl64.Mat4
	near   float64
	width  float64
	height float64
}

// Projector builds a projector for eye
func (l Lens) Projector(eye mgl64.Vec3) Projector {
	return Projector{
		vp:     l.ViewProjection(eye),
		near:   l.Near,
		width:  float64(max(1, l.Width)),
		height: float64(max(1, l.Height)),
	}
}

// Project maps a world point to viewport pixels
// depth is the clip w (distance along the view axis); ok is false outside the frustum
func (p Projector) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.vp.Mul4x1(world.Vec4(1))
	w := clip.W()
	if !(w > p.near) {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip.X()/w, clip.Y()/w, clip.Z()/w
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 || nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	return (nx + 1) / 2 * p.width, (1 - ny) / 2 * p.height, w, true
}

// Ray returns the unit direction from eye through pixel (px, py)
func (l Lens) Ray(px, py float64, eye mgl64.Vec3) (mgl64.Vec3, bool) {
	nx := px/float64(max(1, l.Width))*2 - 1
	ny := 1 - py/float64(max(1, l.Height))*2

	inv := l.ViewProjection(eye).Inv()
	far := inv.Mul4x1(mgl64.Vec4{nx, ny, 0.5, 1})
	if far.W() == 0 {
		return mgl64.Vec3{}, false
	}
	dir := far.Vec3().Mul(1 / far.W()).Sub(eye)
	n := dir.Len()
	if !(n > 0) || math.IsInf(n, 0) {
		return mgl64.Vec3{}, false
	}
	return dir.Mul(1 / n), true
}

// PlaneZ0 intersects the pointer ray with the z=0 plane
// ok is false when the ray is parallel to the plane or points away from it
func (l Lens) PlaneZ0(px, py float64, eye mgl64.Vec3) (mgl64.Vec2, bool) {
	dir, ok := l.Ray(px, py, eye)
	if !ok || math.Abs(dir.Z()) < 1e-9 {
		return mgl64.Vec2{}, false
	}
	t := -eye.Z() / dir.Z()
	if t < 0 {
		return mgl64.Vec2{}, false
	}
	hit := eye.Add(dir.Mul(t))
	if math.IsNaN(hit.X()) || math.IsNaN(hit.Y()) {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{hit.X(), hit.Y()}, true
}
