// Package meteor spawns short-lived shooting stars on a fixed cadence and ages them out.
package meteor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

// Star is a fading trail travelling in a straight line
// Lifecycle: spawned (Age 0) -> aging -> expired (Age > Life), then released
type Star struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3 // Unit length
	Speed  float64    // World units per ms
	Age    float64    // ms
	Life   float64    // ms
	Span   float64    // Trail world length behind the head

	// Trail holds head first, tail last
	Trail []mgl64.Vec3

	released bool
}

// Head returns the current leading point
func (s *Star) Head() mgl64.Vec3 {
	return s.Origin.Add(s.Dir.Mul(s.Speed * s.Age))
}

// Opacity fades linearly from 1 at spawn to 0 at Life
func (s *Star) Opacity() float64 {
	if s.Life <= 0 {
		return 0
	}
	return vmath.Clamp(1-s.Age/s.Life, 0, 1)
}

// Expired reports whether the star outlived its life
func (s *Star) Expired() bool {
	return s.Age > s.Life
}

// Released reports whether the trail buffer was freed
func (s *Star) Released() bool {
	return s.released
}

// Release frees the trail buffer. Safe to call more than once
func (s *Star) Release() {
	s.Trail = nil
	s.released = true
}

// advance ages the star and lays the trail out behind the new head
func (s *Star) advance(dtMs float64) {
	s.Age += dtMs
	s.layout()
}

func (s *Star) layout() {
	n := len(s.Trail)
	if n == 0 {
		return
	}
	head := s.Head()
	if n == 1 {
		s.Trail[0] = head
		return
	}
	step := s.Span / float64(n-1)
	for i := range s.Trail {
		s.Trail[i] = head.Sub(s.Dir.Mul(step * float64(i)))
	}
}
