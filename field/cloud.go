// Package field generates and animates the decorative point clouds: a cubic starfield,
// an ellipsoidal nebula and a thin horizontal flow band.
//
// Buffers are allocated once per cloud and never grow. Positions hold the rendered
// state mutated every frame, Origins keep the generated layout that noise and repulsion
// are computed from.
package field

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies which generator produced a cloud
type Kind uint8

const (
	KindStarfield Kind = iota
	KindNebula
	KindFlow
)

func (k Kind) String() string {
	switch k {
	case KindStarfield:
		return "starfield"
	case KindNebula:
		return "nebula"
	case KindFlow:
		return "flow"
	default:
		return "unknown"
	}
}

// Color is linear RGB in [0,1]
type Color struct {
	R, G, B float64
}

// Scale multiplies all channels by f
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Cloud is a fixed-size point buffer with parallel colour and optional size buffers
type Cloud struct {
	Kind      Kind
	Positions []mgl64.Vec3
	Origins   []mgl64.Vec3
	Colors    []Color
	Sizes     []float64 // Nebula only, nil means BaseSize for every point
	BaseSize  float64

	// Rotation and Tilt are rigid-body rotations about Y and X, used by the starfield
	Rotation float64
	Tilt     float64

	// Flow colour ramp, kept for the per-frame recolour
	tint      Color
	halfWidth float64
	edgeDim   float64

	disposed bool
}

func newCloud(kind Kind, n int, baseSize float64) *Cloud {
	if n < 0 {
		n = 0
	}
	return &Cloud{
		Kind:      kind,
		Positions: make([]mgl64.Vec3, n),
		Origins:   make([]mgl64.Vec3, n),
		Colors:    make([]Color, n),
		BaseSize:  baseSize,
	}
}

// Len returns the point count
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Positions)
}

// Size returns the size of point i
func (c *Cloud) Size(i int) float64 {
	if c.Sizes != nil {
		return c.Sizes[i]
	}
	return c.BaseSize
}

// Dispose releases the buffers. Safe to call more than once
func (c *Cloud) Dispose() {
	if c == nil || c.disposed {
		return
	}
	c.Positions = nil
	c.Origins = nil
	c.Colors = nil
	c.Sizes = nil
	c.disposed = true
}

// Disposed reports whether Dispose has run
func (c *Cloud) Disposed() bool {
	return c == nil || c.disposed
}
