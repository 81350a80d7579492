package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/camera"
	"github.com/Saatvik1911/mystic-particle-dreams/field"
	"github.com/Saatvik1911/mystic-particle-dreams/meteor"
)

// Surface is the drawing target a scene is mounted on
// Size is in pixels; Draw must not retain v or its slices past the call
type Surface interface {
	Size() (w, h int)
	Draw(v *View)
}

// View is the per-frame snapshot handed to Surface.Draw
type View struct {
	Name    string
	Time    float64
	Eye     mgl64.Vec3
	Lens    camera.Lens
	Clouds  []*field.Cloud
	Meteors []*meteor.Star

	// Opacity is the section cross-fade, Mist scales nebula and flow brightness
	Opacity float64
	Mist    float64
}
