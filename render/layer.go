package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Saatvik1911/mystic-particle-dreams/camera"
	"github.com/Saatvik1911/mystic-particle-dreams/field"
	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/scene"
)

// RGBMeteorTail is the colour a trail fades into behind its head
var RGBMeteorTail = RGB{90, 110, 200}

// Layer rasterizes one scene into a shared Buffer; several layers composite additively
type Layer struct {
	buf *Buffer
}

// NewLayer creates a layer drawing into buf
func NewLayer(buf *Buffer) *Layer {
	return &Layer{buf: buf}
}

// Size returns the buffer pixel size
func (l *Layer) Size() (w, h int) {
	return l.buf.Size()
}

// Draw implements scene.Surface
func (l *Layer) Draw(v *scene.View) {
	if v == nil || !(v.Opacity > 0) {
		return
	}
	proj := v.Lens.Projector(v.Eye)

	for _, c := range v.Clouds {
		gain := v.Opacity
		if c.Kind != field.KindStarfield {
			gain *= v.Mist
		}
		spin := c.Rotation != 0 || c.Tilt != 0
		var rot mgl64.Mat3
		if spin {
			rot = mgl64.Rotate3DX(c.Tilt).Mul3(mgl64.Rotate3DY(c.Rotation))
		}
		for i, p := range c.Positions {
			if spin {
				p = rot.Mul3x1(p)
			}
			l.point(proj, p, c.Size(i), FromColor(c.Colors[i], 1), gain, false)
		}
	}

	for _, st := range v.Meteors {
		if st.Released() {
			continue
		}
		alpha := st.Opacity() * v.Opacity
		n := float64(len(st.Trail))
		for i, p := range st.Trail {
			taper := 1 - float64(i)/n
			col := Lerp(RGBMeteor, RGBMeteorTail, 1-taper)
			l.point(proj, p, parameter.MeteorSize*taper, col, alpha*taper, true)
		}
	}
}

// point projects p and lights its pixel, plus the four neighbours for large near points
// Brightness follows size over depth, capped at PointMaxGain
func (l *Layer) point(proj camera.Projector, p mgl64.Vec3, size float64, c RGB, gain float64, screen bool) {
	x, y, depth, ok := proj.Project(p)
	if !ok {
		return
	}
	raw := size * parameter.PointScale / depth
	k := min(raw, parameter.PointMaxGain) * gain
	if !(k > 0) {
		return
	}

	px, py := int(x), int(y)
	l.plot(px, py, c, k, screen)
	if raw < parameter.GlowThreshold {
		return
	}
	halo := k * parameter.GlowFalloff
	l.plot(px-1, py, c, halo, screen)
	l.plot(px+1, py, c, halo, screen)
	l.plot(px, py-1, c, halo, screen)
	l.plot(px, py+1, c, halo, screen)
}

func (l *Layer) plot(x, y int, c RGB, k float64, screen bool) {
	if screen {
		l.buf.PlotScreen(x, y, c, min(k, 1))
		return
	}
	l.buf.Plot(x, y, Scale(c, k))
}
