package scene

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/field"
	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

// Pointer and wheel coordinates are surface pixels, origin top-left

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PointerMove updates the world-space pointer and applies drag rotation when a button is held
func (s *Scene) PointerMove(x, y float64) {
	if s == nil || !finite(x, y) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.orbit.Dragging() {
		s.orbit.Drag(x-s.lastX, y-s.lastY)
		s.eye = s.orbit.UpdatePosition()
	}
	s.lastX, s.lastY = x, y

	if p, ok := s.lens.PlaneZ0(x, y, s.eye); ok {
		s.mouse = p
	} else {
		s.mouse = mgl64.Vec2{parameter.MouseSentinel, parameter.MouseSentinel}
	}
}

// PointerDown starts a drag at (x, y)
func (s *Scene) PointerDown(x, y float64) {
	if s == nil || !finite(x, y) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.lastX, s.lastY = x, y
	s.orbit.BeginDrag()
}

// PointerUp ends the drag
func (s *Scene) PointerUp() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orbit.EndDrag()
}

// PointerLeave parks the pointer at the sentinel so repulsion stops
func (s *Scene) PointerLeave() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouse = mgl64.Vec2{parameter.MouseSentinel, parameter.MouseSentinel}
	s.orbit.EndDrag()
}

// Wheel zooms by dy; positive moves the camera away
func (s *Scene) Wheel(dy float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.orbit.Zoom(dy)
	s.eye = s.orbit.UpdatePosition()
}

// Resize updates the viewport; sizes below one pixel are floored to one
func (s *Scene) Resize(w, h int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lens.SetViewport(w, h)
}

// Handle is the external control for a mounted scene; the zero Handle does nothing
type Handle struct {
	s *Scene
}

// Handle returns the control handle for s
func (s *Scene) Handle() Handle {
	return Handle{s: s}
}

// Active reports the current active flag
func (h Handle) Active() bool {
	if h.s == nil {
		return false
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.s.active
}

// TransitionTo eases the camera azimuth toward az
func (h Handle) TransitionTo(az float64) {
	if h.s == nil {
		return
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.s.closed {
		return
	}
	h.s.orbit.TransitionTo(az)
}

// SetActive fades the section in or out, turns the camera toward the matching azimuth and
// swaps animation settings when the preset defines an active variant
func (h Handle) SetActive(active bool) {
	s := h.s
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.active == active {
		return
	}
	s.active = active

	if active {
		s.opacityTarget = 1
		s.orbit.TransitionTo(s.preset.ActiveAzimuth)
	} else {
		s.opacityTarget = 0
		s.orbit.TransitionTo(s.preset.RestAzimuth)
	}

	if s.preset.ActiveSettings == nil {
		return
	}
	next := s.preset.Settings.Normalize()
	if active {
		next = s.preset.ActiveSettings.Normalize()
	}
	s.applySettings(next)
}

// applySettings installs next, rebuilding the nebula when particle density changed
func (s *Scene) applySettings(next field.Settings) {
	regen := next.ParticleDensity != s.settings.ParticleDensity
	s.settings = next
	if !regen || s.nebula == nil {
		return
	}
	s.ledger.Release(s.nebula)
	s.nebula = s.track(s.newNebula())
	log.Printf("scene %s: nebula rebuilt with %d points", s.preset.Name, s.nebula.Len())
}
