package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TimeStep is the virtual clock advance per frame
	// Fixed nominal step: animation speed follows frame count, not wall time
	TimeStep = 0.01

	// FrameMillis is the nominal milliseconds per frame fed to the shooting-star spawner
	FrameMillis = 1000.0 / 60.0

	// EventQueueSize is the buffered capacity of the input event channel
	EventQueueSize = 256

	// DefaultFPS matches FrameUpdateInterval
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configured frame rate
	MinFPS = 10
	MaxFPS = 120
)

// DefaultSeed drives every generator when no seed is configured
const DefaultSeed = 0x5EED_F1E1D
