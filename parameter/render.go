package parameter

// Terminal rasterizer
const (
	// HalfBlock carries two vertical pixels per cell: fg is the top pixel, bg the bottom
	HalfBlock = '▀'

	// PointScale converts point size over clip depth into brightness
	PointScale = 260.0

	// PointMaxGain caps the brightness one point contributes to a pixel
	PointMaxGain = 1.6

	// GlowThreshold is the projected size above which a point also lights its neighbours
	GlowThreshold = 3.0

	// GlowFalloff is the neighbour brightness relative to the centre pixel
	GlowFalloff = 0.35
)

// Background colour components
const (
	BackgroundR = 4
	BackgroundG = 3
	BackgroundB = 12
)
