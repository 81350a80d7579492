package field

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

var sentinel = mgl64.Vec2{parameter.MouseSentinel, parameter.MouseSentinel}

func testNebulaShape(n int) NebulaShape {
	return NebulaShape{
		Count:        n,
		A:            parameter.NebulaA,
		B:            parameter.NebulaB,
		C:            parameter.NebulaC,
		VariationMin: parameter.NebulaVariationMin,
		VariationMax: parameter.NebulaVariationMax,
		CoreRadius:   parameter.NebulaCoreRadius,
		CoreFalloff:  parameter.NebulaCoreFalloff,
		HaloFalloff:  parameter.NebulaHaloFalloff,
		Grey:         parameter.NebulaGrey,
		Core:         Color{R: 0.62, G: 0.32, B: 0.92},
		Halo:         Color{R: 0.55, G: 0.5, B: 0.65},
		BrightJitter: parameter.NebulaBrightJitter,
		SizeBase:     parameter.NebulaSizeBase,
		SizeJitter:   parameter.NebulaSizeJitter,
		SizeGain:     parameter.NebulaSizeGain,
	}
}

func TestNewStarfieldBounds(t *testing.T) {
	shape := StarfieldShape{Count: 2000, HalfExtent: 500, BrightMin: 0.5, BrightMax: 1, Size: 1}
	c := NewStarfield(shape, vmath.NewFastRand(7))

	if c.Len() != shape.Count {
		t.Fatalf("Expected %d points, got %d", shape.Count, c.Len())
	}
	if c.Sizes != nil {
		t.Error("Expected starfield to use a uniform size")
	}
	for i, p := range c.Positions {
		for axis := 0; axis < 3; axis++ {
			if math.Abs(p[axis]) > shape.HalfExtent {
				t.Fatalf("Point %d axis %d outside cube: %v", i, axis, p)
			}
		}
		col := c.Colors[i]
		if col.B < shape.BrightMin || col.B > shape.BrightMax {
			t.Fatalf("Point %d brightness %v outside band", i, col.B)
		}
		if col.R > col.G || col.G > col.B {
			t.Fatalf("Point %d not tinted toward blue: %+v", i, col)
		}
		if p != c.Origins[i] {
			t.Fatalf("Point %d origin mismatch", i)
		}
	}
}

func TestNewNebulaShape(t *testing.T) {
	shape := testNebulaShape(6000)
	c := NewNebula(shape, vmath.NewFastRand(11))

	if c.Len() != shape.Count || len(c.Sizes) != shape.Count {
		t.Fatalf("Expected %d points and sizes, got %d/%d", shape.Count, c.Len(), len(c.Sizes))
	}

	inner, outer := 0, 0
	for i, p := range c.Positions {
		if math.Abs(p.X()) > shape.A*shape.VariationMax ||
			math.Abs(p.Y()) > shape.B*shape.VariationMax ||
			math.Abs(p.Z()) > shape.C*shape.VariationMax {
			t.Fatalf("Point %d outside stretched ellipsoid: %v", i, p)
		}

		d := nebulaDistance(p, shape)
		lo := shape.SizeBase + (1-d)*shape.SizeGain
		if c.Sizes[i] < lo || c.Sizes[i] > lo+shape.SizeJitter {
			t.Fatalf("Point %d size %v outside [%v, %v]", i, c.Sizes[i], lo, lo+shape.SizeJitter)
		}

		if d < 0.5 {
			inner++
		} else {
			outer++
		}
	}

	// Inner half of the normalized radius holds 1/8 of a uniform ellipsoid's volume
	if inner <= outer {
		t.Errorf("Expected centre-weighted density, inner=%d outer=%d", inner, outer)
	}
}

func TestNebulaSizePeaksAtCentre(t *testing.T) {
	shape := testNebulaShape(8000)
	c := NewNebula(shape, vmath.NewFastRand(17))

	var centreSum, edgeSum float64
	var centreN, edgeN int
	for i, p := range c.Positions {
		switch d := nebulaDistance(p, shape); {
		case d < 0.2:
			centreSum += c.Sizes[i]
			centreN++
		case d > 0.8:
			edgeSum += c.Sizes[i]
			edgeN++
		}
	}
	if centreN == 0 || edgeN == 0 {
		t.Fatalf("Expected points near centre and edge, centre=%d edge=%d", centreN, edgeN)
	}

	centre, edge := centreSum/float64(centreN), edgeSum/float64(edgeN)
	if centre <= edge {
		t.Errorf("Expected larger points at centre, centre=%.3f edge=%.3f", centre, edge)
	}
}

func TestNebulaBrightnessJitter(t *testing.T) {
	shape := testNebulaShape(2000)
	flat := shape
	flat.BrightJitter = 0
	c := NewNebula(shape, vmath.NewFastRand(23))
	ref := NewNebula(flat, vmath.NewFastRand(23))

	dimmer := 0
	for i := range c.Colors {
		if c.Positions[i] != ref.Positions[i] {
			t.Fatalf("Point %d moved with brightness jitter", i)
		}
		got, full := c.Colors[i].R, ref.Colors[i].R
		if got > full+1e-12 || got < full*(1-shape.BrightJitter)-1e-12 {
			t.Fatalf("Point %d red %v outside jitter range of %v", i, got, full)
		}
		if got < full {
			dimmer++
		}
	}
	if dimmer == 0 {
		t.Error("Expected some points dimmed by jitter")
	}
}

func TestNebulaCoreTint(t *testing.T) {
	shape := testNebulaShape(4000)
	c := NewNebula(shape, vmath.NewFastRand(3))

	sawCore, sawHalo := false, false
	for i, p := range c.Positions {
		d := nebulaDistance(p, shape)
		col := c.Colors[i]
		if d < shape.CoreRadius {
			sawCore = true
			// Core keeps the purple dominance of the core colour
			if !(col.B > col.G && col.R > col.G) {
				t.Fatalf("Core point %d lost purple tint: %+v", i, col)
			}
		} else {
			sawHalo = true
			if col.R > shape.Grey || col.B > shape.Grey+0.1 {
				t.Fatalf("Halo point %d too bright: %+v", i, col)
			}
		}
	}
	if !sawCore || !sawHalo {
		t.Errorf("Expected both core and halo points, core=%v halo=%v", sawCore, sawHalo)
	}
}

func TestNewFlowBand(t *testing.T) {
	shape := FlowShape{Count: 1000, Width: 1000, Height: 40, Depth: 100, EdgeDim: 0.7, Tint: Color{1, 1, 1}, Size: 1}
	c := NewFlow(shape, vmath.NewFastRand(5))

	for i, p := range c.Positions {
		if math.Abs(p.X()) > 500 || math.Abs(p.Y()) > 20 || math.Abs(p.Z()) > 50 {
			t.Fatalf("Point %d outside band: %v", i, p)
		}
		want := 1 - math.Abs(p.X())/500*0.7
		if math.Abs(c.Colors[i].R-want) > 1e-9 {
			t.Fatalf("Point %d brightness %v, want %v", i, c.Colors[i].R, want)
		}
	}
}

func TestRepelProperties(t *testing.T) {
	s := DefaultSettings()
	mouse := mgl64.Vec2{10, -20}

	tests := []struct {
		name  string
		point mgl64.Vec3
	}{
		{"right", mgl64.Vec3{40, -20, 5}},
		{"diagonal", mgl64.Vec3{-30, 10, 0}},
		{"close", mgl64.Vec3{10.5, -20.2, 0}},
		{"near edge", mgl64.Vec3{10 + s.InteractionRadius*0.99, -20, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.point.Vec2().Sub(mouse).Len()
			after := Repel(tt.point, mouse, s).Vec2().Sub(mouse).Len()
			if after < before {
				t.Errorf("Repulsion attracted: before %v, after %v", before, after)
			}
		})
	}
}

func TestRepelMagnitude(t *testing.T) {
	s := DefaultSettings()
	mouse := mgl64.Vec2{0, 0}

	at := func(dist float64) float64 {
		p := mgl64.Vec3{dist, 0, 0}
		return Repel(p, mouse, s).Sub(p).Len()
	}

	if got := at(0); math.Abs(got-s.RepelStrength) > 1e-9 {
		t.Errorf("Expected full strength %v at zero distance, got %v", s.RepelStrength, got)
	}
	if got := at(s.InteractionRadius); got != 0 {
		t.Errorf("Expected zero force at the radius, got %v", got)
	}
	if got := at(s.InteractionRadius * 3); got != 0 {
		t.Errorf("Expected zero force outside the radius, got %v", got)
	}

	prev := at(0)
	for d := 1.0; d < s.InteractionRadius; d += 7 {
		got := at(d)
		if got > prev {
			t.Fatalf("Force grew with distance at %v: %v > %v", d, got, prev)
		}
		prev = got
	}
}

func TestRepelIgnoresZ(t *testing.T) {
	s := DefaultSettings()
	p := mgl64.Vec3{5, 5, 300}
	got := Repel(p, mgl64.Vec2{0, 0}, s)
	if got.Z() != 300 {
		t.Errorf("Expected z untouched, got %v", got.Z())
	}
}

func TestAnimateSmoothingMonotonic(t *testing.T) {
	s := DefaultSettings()
	s.FlowAmplitude = 0 // Fixed target: origin

	c := NewStarfield(StarfieldShape{Count: 50, HalfExtent: 100, BrightMin: 1, BrightMax: 1, Size: 1}, vmath.NewFastRand(9))
	start := mgl64.Vec3{400, -400, 250}
	for i := range c.Positions {
		c.Positions[i] = start
	}

	prevGap := make([]float64, c.Len())
	for i := range prevGap {
		prevGap[i] = c.Positions[i].Sub(c.Origins[i]).Len()
	}

	for frame := 0; frame < 300; frame++ {
		Animate(c, float64(frame)*parameter.TimeStep, sentinel, s, nil)
		for i, p := range c.Positions {
			o := c.Origins[i]
			for axis := 0; axis < 3; axis++ {
				// Starts above the origin on x/z and below on y, must never cross it
				if (start[axis] > o[axis] && p[axis] < o[axis]) || (start[axis] < o[axis] && p[axis] > o[axis]) {
					t.Fatalf("Frame %d point %d overshot axis %d: %v vs %v", frame, i, axis, p, o)
				}
			}
			gap := p.Sub(o).Len()
			if gap > prevGap[i] {
				t.Fatalf("Frame %d point %d moved away: %v > %v", frame, i, gap, prevGap[i])
			}
			prevGap[i] = gap
		}
	}
}

func TestAnimateSentinelHasNoEffect(t *testing.T) {
	s := DefaultSettings()
	c := NewNebula(testNebulaShape(2000), vmath.NewFastRand(1))
	ref := NewNebula(testNebulaShape(2000), vmath.NewFastRand(1))

	Animate(c, parameter.TimeStep, sentinel, s, vmath.NewFastRand(2))
	for i, origin := range ref.Origins {
		target := origin.Add(Noise(parameter.TimeStep, origin, s))
		want := origin.Add(target.Sub(origin).Mul(s.ReturnSpeed))
		if !c.Positions[i].ApproxEqualThreshold(want, 1e-9) {
			t.Fatalf("Point %d affected by sentinel pointer: %v, want %v", i, c.Positions[i], want)
		}
	}
}

func TestAnimateDepthJitter(t *testing.T) {
	s := DefaultSettings()
	s.FlowAmplitude = 0
	shape := FlowShape{Count: 200, Width: 100, Height: 10, Depth: 10, Tint: Color{1, 1, 1}, Size: 1}
	mouse := mgl64.Vec2{0, 0}

	flat := NewFlow(shape, vmath.NewFastRand(4))
	Animate(flat, 0, mouse, s, nil)
	for i, p := range flat.Positions {
		if p.Z() != flat.Origins[i].Z() {
			t.Fatalf("Point %d moved in depth without jitter source: %v", i, p)
		}
	}

	c := NewFlow(shape, vmath.NewFastRand(4))
	Animate(c, 0, mouse, s, vmath.NewFastRand(8))
	moved := 0
	limit := s.ReturnSpeed * 0.5 * s.RepelStrength * parameter.RepelZJitter
	for i, p := range c.Positions {
		dz := math.Abs(p.Z() - c.Origins[i].Z())
		if dz > limit+1e-9 {
			t.Fatalf("Point %d depth step %v exceeds %v", i, dz, limit)
		}
		if dz > 0 {
			moved++
		}
		// Jitter only touches depth
		if p.X() != flat.Positions[i].X() || p.Y() != flat.Positions[i].Y() {
			t.Fatalf("Point %d x/y differs from unjittered run: %v vs %v", i, p, flat.Positions[i])
		}
	}
	if moved == 0 {
		t.Error("Expected pushed points to scatter in depth")
	}
}

func TestAnimateKeepsPositionOnNonFinite(t *testing.T) {
	s := DefaultSettings()
	c := NewFlow(FlowShape{Count: 10, Width: 100, Height: 10, Depth: 10, Tint: Color{1, 1, 1}, Size: 1}, vmath.NewFastRand(2))
	before := append([]mgl64.Vec3(nil), c.Positions...)

	Animate(c, math.Inf(1), sentinel, s, nil)
	for i := range c.Positions {
		if c.Positions[i] != before[i] {
			t.Fatalf("Point %d changed on non-finite time: %v", i, c.Positions[i])
		}
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{
		ReturnSpeed:       5,
		InteractionRadius: -1,
		MistOpacity:       math.NaN(),
		ParticleDensity:   0,
	}.Normalize()

	if s.ReturnSpeed != 1 {
		t.Errorf("Expected ReturnSpeed clamped to 1, got %v", s.ReturnSpeed)
	}
	if s.InteractionRadius <= 0 {
		t.Errorf("Expected positive radius, got %v", s.InteractionRadius)
	}
	if s.MistOpacity != 0 {
		t.Errorf("Expected NaN opacity collapsed to 0, got %v", s.MistOpacity)
	}
	if s.ParticleDensity <= 0 {
		t.Errorf("Expected positive density, got %v", s.ParticleDensity)
	}
}

func TestFlowColorsPulse(t *testing.T) {
	c := NewFlow(FlowShape{Count: 200, Width: 800, Height: 20, Depth: 20, EdgeDim: 0.5, Tint: Color{0.4, 0.6, 1}, Size: 1}, vmath.NewFastRand(4))
	FlowColors(c, 1.7)
	for i, col := range c.Colors {
		if col.B > 1 || col.B < 0 {
			t.Fatalf("Colour %d out of range: %+v", i, col)
		}
		if col.R > col.G || col.G > col.B {
			t.Fatalf("Colour %d lost tint ordering: %+v", i, col)
		}
	}

	// Non-flow clouds are untouched
	stars := NewStarfield(StarfieldShape{Count: 10, HalfExtent: 10, BrightMin: 1, BrightMax: 1, Size: 1}, vmath.NewFastRand(4))
	before := stars.Colors[0]
	FlowColors(stars, 1.7)
	if stars.Colors[0] != before {
		t.Error("Expected starfield colours unchanged")
	}
}

func TestSpinWraps(t *testing.T) {
	c := NewStarfield(StarfieldShape{Count: 1, HalfExtent: 1, Size: 1}, vmath.NewFastRand(1))
	for i := 0; i < 100; i++ {
		Spin(c, 1, 0.5)
	}
	if c.Rotation < -2*math.Pi || c.Rotation > 2*math.Pi {
		t.Errorf("Expected rotation wrapped, got %v", c.Rotation)
	}
	if c.Tilt < -2*math.Pi || c.Tilt > 2*math.Pi {
		t.Errorf("Expected tilt wrapped, got %v", c.Tilt)
	}
}

func TestSpinAdvancesBothAxes(t *testing.T) {
	c := NewStarfield(StarfieldShape{Count: 1, HalfExtent: 1, Size: 1}, vmath.NewFastRand(1))
	for _i := 0; _i < 10; _i++ {
		Spin(c, parameter.StarSpinY, parameter.StarSpinX)
	}
	if math.Abs(c.Rotation-10*parameter.StarSpinY) > 1e-12 {
		t.Errorf("Rotation = %v, want %v", c.Rotation, 10*parameter.StarSpinY)
	}
	if math.Abs(c.Tilt-10*parameter.StarSpinX) > 1e-12 {
		t.Errorf("Tilt = %v, want %v", c.Tilt, 10*parameter.StarSpinX)
	}
	if c.Rotation <= c.Tilt {
		t.Error("Expected yaw to outpace pitch")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	c := NewNebula(testNebulaShape(10), vmath.NewFastRand(1))
	c.Dispose()
	c.Dispose()
	if !c.Disposed() || c.Len() != 0 || c.Sizes != nil {
		t.Error("Expected buffers released after Dispose")
	}

	// Frame helpers must tolerate a released cloud
	Animate(c, 1, sentinel, DefaultSettings(), nil)
	FlowColors(c, 1)
	Spin(c, 1, 1)
}
