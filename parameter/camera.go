package parameter

import "math"

// Perspective lens
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV  = 75.0
	CameraNear = 0.1
	CameraFar  = 5000.0
)

// Orbit controls
const (
	// DragSensitivity converts pointer pixels to radians
	DragSensitivity = 0.005

	// ZoomSensitivity converts wheel delta to distance units
	ZoomSensitivity = 0.5

	// PolarLimit bounds the polar angle to [-PolarLimit, PolarLimit]
	PolarLimit = math.Pi / 2

	// TransitionEase is the fraction of remaining azimuth covered per frame
	TransitionEase = 0.05

	// TransitionEpsilon is the snap threshold in radians
	TransitionEpsilon = 0.01

	// IdleAmplitude bounds the idle azimuth sway in radians
	IdleAmplitude = 0.08

	// IdleFrequency is the sway angular speed per virtual time unit
	IdleFrequency = 0.3
)

// Pointer
const (
	// MouseSentinel parks the world-space pointer far off-scene until the first move
	MouseSentinel = 10000.0

	// WheelStep is the wheel delta reported per terminal wheel notch
	WheelStep = 100.0
)
