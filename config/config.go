// Package config holds the section presets and the optional TOML and environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/Saatvik1911/mystic-particle-dreams/field"
	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

// ErrUnknownVariant is returned for a section name outside Sections
var ErrUnknownVariant = errors.New("unknown section variant")

// Environment keys read after the config file
const (
	EnvFPS     = "STARFIELD_FPS"
	EnvSeed    = "STARFIELD_SEED"
	EnvSound   = "STARFIELD_SOUND"
	EnvSection = "STARFIELD_SECTION"
	EnvDebug   = "STARFIELD_DEBUG"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// SectionConfig overrides one preset
type SectionConfig struct {
	Distance float64        `toml:"distance"`
	Settings field.Settings `toml:"settings"`
}

// Config is the viewer configuration
type Config struct {
	FPS     int    `toml:"fps"`
	Seed    uint64 `toml:"seed"`
	Sound   bool   `toml:"sound"`
	Debug   bool   `toml:"debug"`
	Section string `toml:"section"`

	Hero     SectionConfig `toml:"hero"`
	About    SectionConfig `toml:"about"`
	Projects SectionConfig `toml:"projects"`
}

// Default returns the configuration the viewer runs with when nothing is overridden
func Default() *Config {
	hero, about, projects := HeroPreset(), AboutPreset(), ProjectsPreset()
	return &Config{
		FPS:      parameter.DefaultFPS,
		Seed:     parameter.DefaultSeed,
		Section:  SectionHero,
		Hero:     SectionConfig{Distance: hero.Distance, Settings: hero.Settings},
		About:    SectionConfig{Distance: about.Distance, Settings: about.Settings},
		Projects: SectionConfig{Distance: projects.Distance, Settings: projects.Settings},
	}
}

// Load reads path (skipped when empty) over the defaults, then applies .env and process environment
// A missing .env is not an error, a missing explicit config file is
func Load(path string) (*Config, error) {
	return load(path, DefaultEnvFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config read: %w", err)
		}
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	// Process environment wins over the .env file
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg; keys absent from data keep their current value
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys: %s", strict.String())
		}
		return err
	}
	return nil
}

// Encode renders cfg as TOML
func Encode(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	if v, ok := get(EnvFPS); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.FPS = n
	}
	if v, ok := get(EnvSeed); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v, ok := get(EnvSound); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = b
	}
	if v, ok := get(EnvDebug); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := get(EnvSection); ok {
		c.Section = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate rejects an unknown section and clamps the frame rate into range
func (c *Config) Validate() error {
	if !IsSection(c.Section) {
		return fmt.Errorf("section %q: %w", c.Section, ErrUnknownVariant)
	}
	c.FPS = min(max(c.FPS, parameter.MinFPS), parameter.MaxFPS)
	return nil
}

// IsSection reports whether name is a known section
func IsSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Preset returns the named preset with this configuration applied
func (c *Config) Preset(name string) (Preset, error) {
	var (
		p  Preset
		sc SectionConfig
	)
	switch name {
	case SectionHero:
		p, sc = HeroPreset(), c.Hero
	case SectionAbout:
		p, sc = AboutPreset(), c.About
	case SectionProjects:
		p, sc = ProjectsPreset(), c.Projects
	default:
		return Preset{}, fmt.Errorf("preset %q: %w", name, ErrUnknownVariant)
	}

	p.Settings = sc.Settings.Normalize()
	if p.ActiveSettings != nil {
		a := p.ActiveSettings.Normalize()
		p.ActiveSettings = &a
	}
	if sc.Distance > 0 {
		p.Distance = min(max(sc.Distance, p.MinDistance), p.MaxDistance)
	}
	return p, nil
}

// Presets returns every section preset in page order
func (c *Config) Presets() ([]Preset, error) {
	out := make([]Preset, 0, len(Sections))
	for _, name := range Sections {
		p, err := c.Preset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
