package config

import (
	"math"

	"github.com/Saatvik1911/mystic-particle-dreams/field"
	"github.com/Saatvik1911/mystic-particle-dreams/meteor"
	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

// Section names
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionProjects = "projects"
)

// Sections lists section names in page order
var Sections = []string{SectionHero, SectionAbout, SectionProjects}

// Preset parameterizes one section background
// Nebula and Flow are optional; nil means the section does not draw that cloud
type Preset struct {
	Name    string
	Stars   field.StarfieldShape
	Nebula  *field.NebulaShape
	Flow    *field.FlowShape
	Meteors meteor.Params

	Distance    float64
	MinDistance float64
	MaxDistance float64

	// Camera azimuth targets for the active flag
	ActiveAzimuth float64
	RestAzimuth   float64

	Settings field.Settings
	// ActiveSettings replaces Settings while the section is active, nil keeps Settings
	ActiveSettings *field.Settings
}

func defaultStars(count int) field.StarfieldShape {
	return field.StarfieldShape{
		Count:      count,
		HalfExtent: parameter.StarHalfExtent,
		BrightMin:  parameter.StarBrightMin,
		BrightMax:  parameter.StarBrightMax,
		Size:       parameter.StarSize,
	}
}

func defaultNebula(count int, a, b, c float64, core, halo field.Color) *field.NebulaShape {
	return &field.NebulaShape{
		Count:        count,
		A:            a,
		B:            b,
		C:            c,
		VariationMin: parameter.NebulaVariationMin,
		VariationMax: parameter.NebulaVariationMax,
		CoreRadius:   parameter.NebulaCoreRadius,
		CoreFalloff:  parameter.NebulaCoreFalloff,
		HaloFalloff:  parameter.NebulaHaloFalloff,
		Grey:         parameter.NebulaGrey,
		Core:         core,
		Halo:         halo,
		BrightJitter: parameter.NebulaBrightJitter,
		SizeBase:     parameter.NebulaSizeBase,
		SizeJitter:   parameter.NebulaSizeJitter,
		SizeGain:     parameter.NebulaSizeGain,
	}
}

func defaultFlow(count int, tint field.Color) *field.FlowShape {
	return &field.FlowShape{
		Count:   count,
		Width:   parameter.FlowWidth,
		Height:  parameter.FlowHeight,
		Depth:   parameter.FlowDepth,
		EdgeDim: parameter.FlowEdgeDim,
		Tint:    tint,
		Size:    parameter.FlowSize,
	}
}

func meteors(intervalMs, lifeMs float64) meteor.Params {
	p := meteor.DefaultParams()
	p.IntervalMs = intervalMs
	p.LifeMs = lifeMs
	return p
}

// HeroPreset is the landing section: full nebula, no flow band
func HeroPreset() Preset {
	return Preset{
		Name:          SectionHero,
		Stars:         defaultStars(parameter.StarCount),
		Nebula:        defaultNebula(parameter.NebulaCount, parameter.NebulaA, parameter.NebulaB, parameter.NebulaC, field.Color{R: 0.62, G: 0.32, B: 0.92}, field.Color{R: 0.55, G: 0.5, B: 0.65}),
		Meteors:       meteors(7000, 3500),
		Distance:      400,
		MinDistance:   150,
		MaxDistance:   800,
		ActiveAzimuth: 0,
		RestAzimuth:   -math.Pi / 6,
		Settings:      field.DefaultSettings(),
	}
}

// AboutPreset is a closer, smaller nebula over a flow band
func AboutPreset() Preset {
	s := field.DefaultSettings()
	s.FlowAmplitude = 10
	s.MistOpacity = 0.7
	return Preset{
		Name:          SectionAbout,
		Stars:         defaultStars(2000),
		Nebula:        defaultNebula(4000, 260, 90, 180, field.Color{R: 0.35, G: 0.45, B: 0.95}, field.Color{R: 0.5, G: 0.55, B: 0.7}),
		Flow:          defaultFlow(parameter.FlowCount, field.Color{R: 0.45, G: 0.6, B: 1}),
		Meteors:       meteors(8000, 4000),
		Distance:      260,
		MinDistance:   120,
		MaxDistance:   400,
		ActiveAzimuth: math.Pi / 3,
		RestAzimuth:   math.Pi / 6,
		Settings:      s,
	}
}

// ProjectsPreset reacts harder to the pointer while it is the active section
func ProjectsPreset() Preset {
	active := field.DefaultSettings()
	active.RepelStrength = 90
	active.InteractionRadius = 150
	active.MistOpacity = 0.9
	active.ParticleDensity = 1.25
	return Preset{
		Name:           SectionProjects,
		Stars:          defaultStars(2500),
		Nebula:         defaultNebula(6000, 340, 120, 200, field.Color{R: 0.3, G: 0.75, B: 0.85}, field.Color{R: 0.5, G: 0.6, B: 0.62}),
		Flow:           defaultFlow(1200, field.Color{R: 0.5, G: 0.9, B: 0.95}),
		Meteors:        meteors(6000, 3000),
		Distance:       450,
		MinDistance:    150,
		MaxDistance:    800,
		ActiveAzimuth:  -math.Pi / 4,
		RestAzimuth:    0,
		Settings:       field.DefaultSettings(),
		ActiveSettings: &active,
	}
}

// Scaled returns count scaled by density, never below one point
func Scaled(count int, density float64) int {
	n := int(math.Round(float64(count) * density))
	return max(1, n)
}

