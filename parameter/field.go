package parameter

// Starfield
const (
	StarCount      = 3000
	StarHalfExtent = 1000.0
	StarBrightMin  = 0.5
	StarBrightMax  = 1.0
	StarSize       = 1.2

	// StarSpinY/StarSpinX are the rigid starfield rotations per frame in radians
	StarSpinY = 0.0003
	StarSpinX = 0.0001
)

// Nebula
const (
	NebulaCount = 7000

	// NebulaA/B/C are the ellipsoid semi-axes (x, y, z)
	NebulaA = 320.0
	NebulaB = 110.0
	NebulaC = 220.0

	// NebulaVariationMin/Max bound the per-point radius variation factor
	NebulaVariationMin = 0.7
	NebulaVariationMax = 1.3

	// NebulaCoreRadius is the normalized distance below which points take the core tint
	NebulaCoreRadius = 0.35

	// NebulaCoreFalloff/HaloFalloff scale brightness loss with normalized distance
	NebulaCoreFalloff = 0.5
	NebulaHaloFalloff = 0.7

	// NebulaGrey is the neutral halo brightness before tint
	NebulaGrey = 0.5

	// NebulaBrightJitter is the largest random brightness loss per point
	NebulaBrightJitter = 0.4

	// Nebula point size is base plus a random jitter plus a gain that peaks at the centre
	NebulaSizeBase   = 1.0
	NebulaSizeJitter = 1.2
	NebulaSizeGain   = 0.8
)

// Flow band
const (
	FlowCount  = 1500
	FlowWidth  = 1400.0
	FlowHeight = 60.0
	FlowDepth  = 240.0
	FlowSize   = 1.5

	// FlowEdgeDim is the brightness lost at the band's horizontal edge
	FlowEdgeDim = 0.7
)

// Animation settings defaults
const (
	NoiseScale        = 1.0
	FlowSpeed         = 1.0
	FlowAmplitude     = 8.0
	InteractionRadius = 120.0
	RepelStrength     = 60.0
	RepelZJitter      = 0.6 // Random depth spread as a fraction of the push
	ReturnSpeed       = 0.08
	MistOpacity       = 0.8
	ParticleDensity   = 1.0

	// OpacityEase is the per-frame fraction used to fade a section in or out
	OpacityEase = 0.06
)
