package parameter

import "time"

// Shooting star chime
const (
	AudioSampleRate  = 44100
	AudioBufferSize  = 100 * time.Millisecond
	ChimeFrequency   = 1320.0
	ChimeOvertone    = 1980.0
	ChimeDuration    = 220 * time.Millisecond
	ChimeVolume      = 0.18
	ChimeMaxPlayback = 4
)
