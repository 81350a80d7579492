package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/vmath"
)

// StarfieldShape describes a uniform cube of background stars
type StarfieldShape struct {
	Count      int
	HalfExtent float64
	BrightMin  float64
	BrightMax  float64
	Size       float64
}

// NebulaShape describes the flattened, centre-weighted ellipsoid cloud
type NebulaShape struct {
	Count        int
	A, B, C      float64 // Semi-axes along x, y, z
	VariationMin float64
	VariationMax float64
	CoreRadius   float64 // Normalized distance of the core tint
	CoreFalloff  float64
	HaloFalloff  float64
	Grey         float64
	Core         Color
	Halo         Color
	BrightJitter float64 // Fraction of brightness a point may lose at random
	SizeBase     float64
	SizeJitter   float64
	SizeGain     float64 // Extra size at the centre, fading to zero at the edge
}

// FlowShape describes a thin horizontal particle band
type FlowShape struct {
	Count   int
	Width   float64
	Height  float64
	Depth   float64
	EdgeDim float64
	Tint    Color
	Size    float64
}

// NewStarfield samples positions uniformly in a cube and tints brightness toward white/blue
func NewStarfield(shape StarfieldShape, rng *vmath.FastRand) *Cloud {
	c := newCloud(KindStarfield, shape.Count, shape.Size)
	for i := range c.Positions {
		p := mgl64.Vec3{
			rng.Signed() * shape.HalfExtent,
			rng.Signed() * shape.HalfExtent,
			rng.Signed() * shape.HalfExtent,
		}
		c.Positions[i] = p
		c.Origins[i] = p

		b := rng.Range(shape.BrightMin, shape.BrightMax)
		c.Colors[i] = Color{R: b * 0.9, G: b * 0.95, B: b}
	}
	return c
}

// NewNebula samples spherical angles and a radius scalar, then stretches each point by the
// semi-axes and a per-point variation. Density is higher toward the centre since r is
// uniform rather than cube-root distributed and sin(v) weights the poles down
func NewNebula(shape NebulaShape, rng *vmath.FastRand) *Cloud {
	c := newCloud(KindNebula, shape.Count, shape.SizeBase)
	c.Sizes = make([]float64, len(c.Positions))

	for i := range c.Positions {
		u := rng.Float64() * 2 * math.Pi
		v := rng.Float64() * math.Pi
		r := rng.Float64()
		variation := rng.Range(shape.VariationMin, shape.VariationMax)

		sv := math.Sin(v)
		p := mgl64.Vec3{
			shape.A * r * sv * math.Cos(u) * variation,
			shape.B * r * sv * math.Sin(u) * variation,
			shape.C * r * math.Cos(v) * variation,
		}
		c.Positions[i] = p
		c.Origins[i] = p

		d := nebulaDistance(p, shape)
		jitter := 1 - rng.Float64()*shape.BrightJitter
		if d < shape.CoreRadius {
			c.Colors[i] = shape.Core.Scale((1 - d*shape.CoreFalloff) * jitter)
		} else {
			grey := Color{R: shape.Grey, G: shape.Grey, B: shape.Grey}
			tinted := Color{
				R: (grey.R + shape.Halo.R*0.2) / 1.2,
				G: (grey.G + shape.Halo.G*0.2) / 1.2,
				B: (grey.B + shape.Halo.B*0.2) / 1.2,
			}
			c.Colors[i] = tinted.Scale((1 - d*shape.HaloFalloff) * jitter)
		}
		c.Sizes[i] = shape.SizeBase + rng.Float64()*shape.SizeJitter + (1-d)*shape.SizeGain
	}
	return c
}

// nebulaDistance is the ellipsoid-normalized distance from centre, clamped to [0,1]
func nebulaDistance(p mgl64.Vec3, shape NebulaShape) float64 {
	if shape.A == 0 || shape.B == 0 || shape.C == 0 {
		return 1
	}
	nx, ny, nz := p.X()/shape.A, p.Y()/shape.B, p.Z()/shape.C
	return vmath.Clamp(math.Sqrt(nx*nx+ny*ny+nz*nz), 0, 1)
}

// NewFlow samples a thin box and dims points toward the band's horizontal ends
func NewFlow(shape FlowShape, rng *vmath.FastRand) *Cloud {
	c := newCloud(KindFlow, shape.Count, shape.Size)
	halfW := shape.Width / 2
	c.tint = shape.Tint
	c.halfWidth = halfW
	c.edgeDim = shape.EdgeDim

	for i := range c.Positions {
		p := mgl64.Vec3{
			rng.Signed() * halfW,
			rng.Signed() * shape.Height / 2,
			rng.Signed() * shape.Depth / 2,
		}
		c.Positions[i] = p
		c.Origins[i] = p
		c.Colors[i] = shape.Tint.Scale(flowBrightness(p.X(), halfW, shape.EdgeDim))
	}
	return c
}

func flowBrightness(x, halfW, edgeDim float64) float64 {
	if halfW <= 0 {
		return 1
	}
	return 1 - vmath.Clamp(math.Abs(x)/halfW, 0, 1)*edgeDim
}
