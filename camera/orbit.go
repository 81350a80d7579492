// Package camera holds the orbit controller that circles the origin and the perspective
// lens used to project points and unproject the pointer.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

// Orbit keeps the camera on a sphere around the origin
// Polar is the elevation angle, Azimuth the rotation about Y
type Orbit struct {
	Polar    float64
	Azimuth  float64
	Distance float64

	MinDistance float64
	MaxDistance float64

	target        float64
	transitioning bool
	dragging      bool

	// Idle sway is applied as sine increments so its total drift stays within ±2*amplitude
	idleAnchored bool
	idleLast     float64
}

// NewOrbit creates an orbit at distance clamped into [lo,hi]
func NewOrbit(distance, lo, hi float64) *Orbit {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Orbit{
		Distance:    vmath.Clamp(distance, lo, hi),
		MinDistance: lo,
		MaxDistance: hi,
	}
}

// UpdatePosition converts the spherical state to a Cartesian eye position
func (o *Orbit) UpdatePosition() mgl64.Vec3 {
	cp := math.Cos(o.Polar)
	return mgl64.Vec3{
		o.Distance * cp * math.Sin(o.Azimuth),
		o.Distance * math.Sin(o.Polar),
		o.Distance * cp * math.Cos(o.Azimuth),
	}
}

// BeginDrag starts accepting Drag deltas
func (o *Orbit) BeginDrag() {
	o.dragging = true
	o.idleAnchored = false
}

// EndDrag stops accepting Drag deltas
func (o *Orbit) EndDrag() {
	o.dragging = false
}

// Dragging reports whether a drag is in progress
func (o *Orbit) Dragging() bool {
	return o.dragging
}

// Drag applies pointer deltas in pixels; ignored outside BeginDrag/EndDrag
func (o *Orbit) Drag(dx, dy float64) {
	if !o.dragging {
		return
	}
	o.Azimuth += vmath.Finite(dx, 0) * parameter.DragSensitivity
	o.Polar = vmath.Clamp(o.Polar+vmath.Finite(dy, 0)*parameter.DragSensitivity, -parameter.PolarLimit, parameter.PolarLimit)
}

// Zoom applies a wheel delta; distance stays within [MinDistance, MaxDistance]
func (o *Orbit) Zoom(deltaY float64) {
	if math.IsNaN(deltaY) {
		return
	}
	o.Distance = vmath.Clamp(o.Distance+deltaY*parameter.ZoomSensitivity, o.MinDistance, o.MaxDistance)
}

// TransitionTo eases the azimuth toward target over the following frames
func (o *Orbit) TransitionTo(target float64) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return
	}
	o.target = target
	o.transitioning = true
	o.idleAnchored = false
}

// Transitioning reports whether a transition is pending
func (o *Orbit) Transitioning() bool {
	return o.transitioning
}

// Target returns the last transition target
func (o *Orbit) Target() float64 {
	return o.target
}

// Step advances the transition or the idle sway for virtual time t
// Returns true on the frame a transition completes
func (o *Orbit) Step(t float64) bool {
	if o.transitioning {
		next := o.Azimuth + (o.target-o.Azimuth)*parameter.TransitionEase
		// A step below float resolution would stall the ease forever at large magnitudes
		if next == o.Azimuth || math.Abs(o.target-next) < parameter.TransitionEpsilon {
			o.Azimuth = o.target
			o.transitioning = false
			return true
		}
		o.Azimuth = next
		return false
	}

	if o.dragging {
		return false
	}

	s := math.Sin(t * parameter.IdleFrequency)
	if math.IsNaN(s) {
		return false
	}
	if o.idleAnchored {
		o.Azimuth += parameter.IdleAmplitude * (s - o.idleLast)
	}
	o.idleLast = s
	o.idleAnchored = true
	return false
}
