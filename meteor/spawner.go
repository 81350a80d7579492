package meteor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

// Params configures spawn cadence, lifetime and geometry
type Params struct {
	IntervalMs  float64
	LifeMs      float64
	TrailLength int
	TrailSpan   float64
	Speed       float64
	Spread      float64
	SpawnMin    mgl64.Vec3
	SpawnMax    mgl64.Vec3
}

// DefaultParams returns the parameter table defaults
func DefaultParams() Params {
	return Params{
		IntervalMs:  parameter.MeteorIntervalMs,
		LifeMs:      parameter.MeteorLifeMs,
		TrailLength: parameter.MeteorTrailLength,
		TrailSpan:   parameter.MeteorTrailSpan,
		Speed:       parameter.MeteorSpeed,
		Spread:      parameter.MeteorSpread,
		SpawnMin:    mgl64.Vec3{parameter.MeteorSpawnXMin, parameter.MeteorSpawnYMin, parameter.MeteorSpawnZMin},
		SpawnMax:    mgl64.Vec3{parameter.MeteorSpawnXMax, parameter.MeteorSpawnYMax, parameter.MeteorSpawnZMax},
	}
}

// baseDir is the down-left sweep every star starts from before jitter
var baseDir = mgl64.Vec3{-1, -0.45, 0.15}

// Spawner owns the active star set
// The spawn timer runs independently of star lifetimes, so stars may overlap
type Spawner struct {
	params Params
	rng    *vmath.FastRand
	timer  float64
	active []*Star

	// OnSpawn is called after a star joins the active set
	OnSpawn func(*Star)
	// OnRelease is called after an expired star leaves the active set
	OnRelease func(*Star)
}

// NewSpawner creates a spawner with no active stars
func NewSpawner(p Params, rng *vmath.FastRand) *Spawner {
	if p.TrailLength < 1 {
		p.TrailLength = 1
	}
	return &Spawner{
		params: p,
		rng:    rng,
	}
}

// Update ages every star, releases the expired ones in the same pass, then advances the
// spawn timer and spawns once it reaches the interval
func (sp *Spawner) Update(dtMs float64) {
	dtMs = vmath.Finite(dtMs, 0)

	kept := sp.active[:0]
	for _, s := range sp.active {
		s.advance(dtMs)
		if s.Expired() {
			s.Release()
			if sp.OnRelease != nil {
				sp.OnRelease(s)
			}
			continue
		}
		kept = append(kept, s)
	}
	// Clear tail so released stars are not retained by the backing array
	for i := len(kept); i < len(sp.active); i++ {
		sp.active[i] = nil
	}
	sp.active = kept

	sp.timer += dtMs
	if sp.params.IntervalMs > 0 && sp.timer >= sp.params.IntervalMs {
		sp.timer = 0
		sp.spawn()
	}
}

// Spawn adds a star immediately without touching the timer
func (sp *Spawner) Spawn() *Star {
	return sp.spawn()
}

func (sp *Spawner) spawn() *Star {
	p := sp.params
	origin := mgl64.Vec3{
		sp.rng.Range(p.SpawnMin.X(), p.SpawnMax.X()),
		sp.rng.Range(p.SpawnMin.Y(), p.SpawnMax.Y()),
		sp.rng.Range(p.SpawnMin.Z(), p.SpawnMax.Z()),
	}
	dir := baseDir.Add(mgl64.Vec3{
		sp.rng.Signed() * p.Spread,
		sp.rng.Signed() * p.Spread,
		sp.rng.Signed() * p.Spread,
	}).Normalize()

	s := &Star{
		Origin: origin,
		Dir:    dir,
		Speed:  p.Speed,
		Life:   p.LifeMs,
		Span:   p.TrailSpan,
		Trail:  make([]mgl64.Vec3, p.TrailLength),
	}
	s.layout()

	sp.active = append(sp.active, s)
	if sp.OnSpawn != nil {
		sp.OnSpawn(s)
	}
	return s
}

// Active returns the live stars; the slice is owned by the spawner
func (sp *Spawner) Active() []*Star {
	return sp.active
}

// Timer returns milliseconds accumulated toward the next spawn
func (sp *Spawner) Timer() float64 {
	return sp.timer
}

// Clear releases every live star
func (sp *Spawner) Clear() {
	for i, s := range sp.active {
		s.Release()
		if sp.OnRelease != nil {
			sp.OnRelease(s)
		}
		sp.active[i] = nil
	}
	sp.active = sp.active[:0]
	sp.timer = 0
}
