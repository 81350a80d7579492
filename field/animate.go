package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

// Settings is the animation bundle read every frame by the updater
type Settings struct {
	NoiseScale        float64 `toml:"noise_scale"`
	FlowSpeed         float64 `toml:"flow_speed"`
	FlowAmplitude     float64 `toml:"flow_amplitude"`
	InteractionRadius float64 `toml:"interaction_radius"`
	RepelStrength     float64 `toml:"repel_strength"`
	ReturnSpeed       float64 `toml:"return_speed"`
	MistOpacity       float64 `toml:"mist_opacity"`
	ParticleDensity   float64 `toml:"particle_density"`
}

// DefaultSettings returns the parameter table defaults
func DefaultSettings() Settings {
	return Settings{
		NoiseScale:        parameter.NoiseScale,
		FlowSpeed:         parameter.FlowSpeed,
		FlowAmplitude:     parameter.FlowAmplitude,
		InteractionRadius: parameter.InteractionRadius,
		RepelStrength:     parameter.RepelStrength,
		ReturnSpeed:       parameter.ReturnSpeed,
		MistOpacity:       parameter.MistOpacity,
		ParticleDensity:   parameter.ParticleDensity,
	}
}

// Normalize clamps every field into the range the frame loop can consume without faults
// ReturnSpeed stays in (0,1] so smoothing never overshoots; NaN collapses to the lower bound
func (s Settings) Normalize() Settings {
	s.NoiseScale = vmath.Clamp(s.NoiseScale, 0, 10)
	s.FlowSpeed = vmath.Clamp(s.FlowSpeed, 0, 10)
	s.FlowAmplitude = vmath.Clamp(s.FlowAmplitude, 0, 200)
	s.InteractionRadius = vmath.Clamp(s.InteractionRadius, 1, 5000)
	s.RepelStrength = vmath.Clamp(s.RepelStrength, 0, 1000)
	s.ReturnSpeed = vmath.Clamp(s.ReturnSpeed, 0.001, 1)
	s.MistOpacity = vmath.Clamp(s.MistOpacity, 0, 1)
	s.ParticleDensity = vmath.Clamp(s.ParticleDensity, 0.05, 4)
	return s
}

// Noise returns the drift offset of a point at virtual time t
// Each axis uses its own frequency and phase so the motion has no axis-aligned symmetry
func Noise(t float64, origin mgl64.Vec3, s Settings) mgl64.Vec3 {
	k := s.NoiseScale * 0.01
	w := t * s.FlowSpeed
	a := s.FlowAmplitude
	return mgl64.Vec3{
		math.Sin(w+origin.Y()*k) * a,
		math.Cos(w*0.8+origin.X()*k+1.3) * a * 0.7,
		math.Sin(w*1.3+(origin.X()+origin.Z())*k*0.5+2.1) * a * 0.5,
	}
}

// Repel pushes target away from mouse in the x/y plane
// Magnitude is RepelStrength at zero distance and falls linearly to zero at the radius
func Repel(target mgl64.Vec3, mouse mgl64.Vec2, s Settings) mgl64.Vec3 {
	dx := target.X() - mouse.X()
	dy := target.Y() - mouse.Y()
	dist := math.Sqrt(dx*dx + dy*dy)
	if !(dist < s.InteractionRadius) {
		return target
	}

	force := (1 - dist/s.InteractionRadius) * s.RepelStrength
	if dist == 0 {
		// Direction undefined under the pointer, push along +X
		return mgl64.Vec3{target.X() + force, target.Y(), target.Z()}
	}
	return mgl64.Vec3{
		target.X() + dx/dist*force,
		target.Y() + dy/dist*force,
		target.Z(),
	}
}

// Animate blends every point toward origin+noise, displaced by the pointer
// Pushed points also scatter in depth by up to RepelZJitter of the push; a nil rng disables that
// A non-finite target leaves the point where it was
func Animate(c *Cloud, t float64, mouse mgl64.Vec2, s Settings, rng *vmath.FastRand) {
	if c.Disposed() {
		return
	}
	for i, origin := range c.Origins {
		drift := origin.Add(Noise(t, origin, s))
		target := Repel(drift, mouse, s)
		if rng != nil {
			if push := math.Hypot(target.X()-drift.X(), target.Y()-drift.Y()); push > 0 {
				target[2] += (rng.Float64() - 0.5) * push * parameter.RepelZJitter
			}
		}
		cur := c.Positions[i]
		next := mgl64.Vec3{
			vmath.Approach(cur.X(), target.X(), s.ReturnSpeed),
			vmath.Approach(cur.Y(), target.Y(), s.ReturnSpeed),
			vmath.Approach(cur.Z(), target.Z(), s.ReturnSpeed),
		}
		c.Positions[i] = mgl64.Vec3{
			vmath.Finite(next.X(), cur.X()),
			vmath.Finite(next.Y(), cur.Y()),
			vmath.Finite(next.Z(), cur.Z()),
		}
	}
}

// FlowColors recomputes flow band colours from time and each point's original x
func FlowColors(c *Cloud, t float64) {
	if c.Disposed() || c.Kind != KindFlow {
		return
	}
	for i, origin := range c.Origins {
		base := flowBrightness(origin.X(), c.halfWidth, c.edgeDim)
		pulse := 0.75 + 0.25*math.Sin(t*2+origin.X()*0.01)
		c.Colors[i] = c.tint.Scale(vmath.Clamp(base*pulse, 0, 1))
	}
}

// Spin rotates a cloud as a rigid body by yaw about Y and pitch about X
func Spin(c *Cloud, yaw, pitch float64) {
	if c.Disposed() {
		return
	}
	c.Rotation = math.Mod(c.Rotation+yaw, 2*math.Pi)
	c.Tilt = math.Mod(c.Tilt+pitch, 2*math.Pi)
}
