package parameter

// Shooting stars
const (
	// MeteorIntervalMs is the default spawn cadence
	MeteorIntervalMs = 7000.0

	// MeteorLifeMs is the default lifetime after which a star is removed
	MeteorLifeMs = 3500.0

	// MeteorTrailLength is the number of points in one trail
	MeteorTrailLength = 24

	// MeteorTrailSpan is the world length of a trail behind its head
	MeteorTrailSpan = 70.0

	// MeteorSpeed is world units per millisecond
	MeteorSpeed = 0.25

	// MeteorSpread jitters the travel direction per axis
	MeteorSpread = 0.15

	// MeteorSize is the head point size, trail points taper from it
	MeteorSize = 3.0
)

// Spawn volume
const (
	MeteorSpawnXMin = -600.0
	MeteorSpawnXMax = 600.0
	MeteorSpawnYMin = 200.0
	MeteorSpawnYMax = 400.0
	MeteorSpawnZMin = -300.0
	MeteorSpawnZMax = 0.0
)
