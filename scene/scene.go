// Package scene mounts one animated section background on a Surface and drives it
// frame by frame: camera, clouds, shooting stars and pointer input.
//
// A Scene is driven from a single goroutine in practice; the mutex only guards
// against a Handle being toggled from elsewhere while a frame is running.
package scene

import (
	"log"
	"math"
	"runtime/debug"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/camera"
	"github.com/Saatvik1911/mystic-particle-dreams/config"
	"github.com/Saatvik1911/mystic-particle-dreams/field"
	"github.com/Saatvik1911/mystic-particle-dreams/meteor"
	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

// Scene is one mounted section
type Scene struct {
	mu sync.Mutex

	surface Surface
	preset  config.Preset
	rng     *vmath.FastRand
	jitter  *vmath.FastRand // Pointer depth scatter, kept apart so spawns stay seed-stable

	clock   Clock
	ledger  *Ledger
	orbit   *camera.Orbit
	lens    camera.Lens
	eye     mgl64.Vec3
	spawner *meteor.Spawner

	stars  *field.Cloud
	nebula *field.Cloud
	flow   *field.Cloud

	settings field.Settings
	mouse    mgl64.Vec2
	lastX    float64
	lastY    float64

	active        bool
	opacity       float64
	opacityTarget float64

	onMeteor func(*meteor.Star)
	view     View
	closed   bool
}

type options struct {
	seed     uint64
	active   bool
	onMeteor func(*meteor.Star)
}

// Option configures New
type Option func(*options)

// WithSeed sets the generator seed; equal seeds produce identical clouds and meteors
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithActive sets the initial active flag, default true
func WithActive(active bool) Option {
	return func(o *options) { o.active = active }
}

// WithOnMeteor registers a callback run for every spawned shooting star
func WithOnMeteor(fn func(*meteor.Star)) Option {
	return func(o *options) { o.onMeteor = fn }
}

// New builds a scene on surface. A nil surface yields a nil scene whose methods do nothing
func New(surface Surface, preset config.Preset, opts ...Option) *Scene {
	if surface == nil {
		log.Printf("scene %s: no surface, not mounted", preset.Name)
		return nil
	}

	o := options{seed: parameter.DefaultSeed, active: true}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		surface:  surface,
		preset:   preset,
		rng:      vmath.NewFastRand(o.seed),
		jitter:   vmath.NewFastRand(^o.seed),
		ledger:   NewLedger(),
		lens:     camera.NewLens(),
		settings: preset.Settings.Normalize(),
		mouse:    mgl64.Vec2{parameter.MouseSentinel, parameter.MouseSentinel},
		onMeteor: o.onMeteor,
	}
	s.lens.SetViewport(surface.Size())

	s.orbit = camera.NewOrbit(preset.Distance, preset.MinDistance, preset.MaxDistance)
	s.active = o.active
	if s.active {
		if preset.ActiveSettings != nil {
			s.settings = preset.ActiveSettings.Normalize()
		}
		s.orbit.Azimuth = preset.ActiveAzimuth
		s.opacity, s.opacityTarget = 1, 1
	} else {
		s.orbit.Azimuth = preset.RestAzimuth
	}
	s.eye = s.orbit.UpdatePosition()

	s.stars = s.track(field.NewStarfield(preset.Stars, s.rng))
	if preset.Nebula != nil {
		s.nebula = s.track(s.newNebula())
	}
	if preset.Flow != nil {
		s.flow = s.track(field.NewFlow(*preset.Flow, s.rng))
	}

	s.spawner = meteor.NewSpawner(preset.Meteors, s.rng)
	s.spawner.OnSpawn = func(st *meteor.Star) {
		s.ledger.Track(st, st.Release)
		if s.onMeteor != nil {
			s.onMeteor(st)
		}
	}
	s.spawner.OnRelease = func(st *meteor.Star) {
		s.ledger.Release(st)
	}

	log.Printf("scene %s: mounted %dx%d, %d resources", preset.Name, s.lens.Width, s.lens.Height, s.ledger.Live())
	return s
}

func (s *Scene) track(c *field.Cloud) *field.Cloud {
	s.ledger.Track(c, c.Dispose)
	return c
}

func (s *Scene) newNebula() *field.Cloud {
	shape := *s.preset.Nebula
	shape.Count = config.Scaled(shape.Count, s.settings.ParticleDensity)
	return field.NewNebula(shape, s.rng)
}

// Frame advances one step and draws. A panic inside the frame is logged and the frame skipped
func (s *Scene) Frame() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("scene %s: frame %d skipped: %v\n%s", s.preset.Name, s.clock.Frames(), r, debug.Stack())
		}
	}()

	s.step()
	s.surface.Draw(s.snapshot())
}

// Step advances the animation one frame without drawing
func (s *Scene) Step() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.step()
}

func (s *Scene) step() {
	t, dtMs := s.clock.Tick()

	s.spawner.Update(dtMs)

	if s.orbit.Step(t) {
		log.Printf("scene %s: transition done at azimuth %.3f", s.preset.Name, s.orbit.Azimuth)
	}
	s.eye = s.orbit.UpdatePosition()

	field.Spin(s.stars, parameter.StarSpinY, parameter.StarSpinX)
	field.Animate(s.nebula, t, s.mouse, s.settings, s.jitter)
	field.Animate(s.flow, t, s.mouse, s.settings, s.jitter)
	field.FlowColors(s.flow, t)

	s.opacity = vmath.Approach(s.opacity, s.opacityTarget, parameter.OpacityEase)
	if math.Abs(s.opacity-s.opacityTarget) < 1e-3 {
		s.opacity = s.opacityTarget
	}
}

func (s *Scene) snapshot() *View {
	v := &s.view
	v.Name = s.preset.Name
	v.Time = s.clock.Time()
	v.Eye = s.eye
	v.Lens = s.lens
	v.Clouds = v.Clouds[:0]
	for _, c := range []*field.Cloud{s.stars, s.nebula, s.flow} {
		if c != nil && !c.Disposed() {
			v.Clouds = append(v.Clouds, c)
		}
	}
	v.Meteors = s.spawner.Active()
	v.Opacity = s.opacity
	v.Mist = s.settings.MistOpacity
	return v
}

// Close releases every cloud and live shooting star. Safe to call more than once
func (s *Scene) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.spawner.Clear()
	s.ledger.ReleaseAll()
	s.stars, s.nebula, s.flow = nil, nil, nil
	s.view = View{}
	s.closed = true
	log.Printf("scene %s: closed after %d frames", s.preset.Name, s.clock.Frames())
}

// Closed reports whether Close has run; a nil scene counts as closed
func (s *Scene) Closed() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Ledger exposes the resource ledger
func (s *Scene) Ledger() *Ledger {
	if s == nil {
		return nil
	}
	return s.ledger
}

// Name returns the preset name
func (s *Scene) Name() string {
	if s == nil {
		return ""
	}
	return s.preset.Name
}

// Opacity returns the current cross-fade opacity
func (s *Scene) Opacity() float64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opacity
}

// Mouse returns the pointer position on the z=0 plane, or the sentinel when unknown
func (s *Scene) Mouse() mgl64.Vec2 {
	if s == nil {
		return mgl64.Vec2{parameter.MouseSentinel, parameter.MouseSentinel}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

// Eye returns the current camera position
func (s *Scene) Eye() mgl64.Vec3 {
	if s == nil {
		return mgl64.Vec3{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eye
}
