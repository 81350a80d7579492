package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Saatvik1911/mystic-particle-dreams/audio"
	"github.com/Saatvik1911/mystic-particle-dreams/config"
	"github.com/Saatvik1911/mystic-particle-dreams/meteor"
	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
	"github.com/Saatvik1911/mystic-particle-dreams/render"
	"github.com/Saatvik1911/mystic-particle-dreams/scene"
)

const (
	logDir      = "logs"
	logFileName = "starfield.log"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	sectionFlag = flag.String("section", "", "Initial section: hero, about, projects")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
	soundFlag   = flag.Bool("sound", false, "Chime when a shooting star appears")
	fpsFlag     = flag.Int("fps", 0, "Frame rate override")
	dumpFlag    = flag.Bool("dump-config", false, "Print the effective configuration as TOML and exit")
)

// setupLogging routes the standard logger to a file in debug mode and discards it otherwise
// The terminal is owned by tcell, so nothing may be printed to stdout while running
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("starfield starting, pid %d", os.Getpid())
	return f
}

// applyFlags overrides the loaded configuration with explicitly set flags
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "section":
			cfg.Section = *sectionFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "fps":
			cfg.FPS = *fpsFlag
		}
	})
	return cfg.Validate()
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "flags: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		data, err := config.Encode(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTARFIELD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	var chime *audio.Chime
	if cfg.Sound {
		chime = audio.NewChime()
		if err := chime.Init(); err != nil {
			// Non-fatal, the viewer runs silent
			log.Printf("Audio initialization failed: %v", err)
			chime = nil
		}
	}

	app, err := NewApp(screen, cfg, chime)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(time.Second / time.Duration(cfg.FPS))
}

// App composites every section scene onto one terminal buffer
type App struct {
	screen   tcell.Screen
	buf      *render.Buffer
	scenes   []*scene.Scene
	active   int
	dragging bool
	chime    *audio.Chime
}

// NewApp mounts one scene per section preset, all drawing into a shared buffer
func NewApp(screen tcell.Screen, cfg *config.Config, chime *audio.Chime) (*App, error) {
	presets, err := cfg.Presets()
	if err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}

	cols, rows := 80, 24
	if screen != nil {
		cols, rows = screen.Size()
	}

	a := &App{
		screen: screen,
		buf:    render.NewBuffer(cols, rows),
		chime:  chime,
	}

	for i, p := range presets {
		s := scene.New(render.NewLayer(a.buf), p,
			scene.WithSeed(cfg.Seed+uint64(i)),
			scene.WithActive(p.Name == cfg.Section),
			scene.WithOnMeteor(func(*meteor.Star) { a.onMeteor(i) }),
		)
		if p.Name == cfg.Section {
			a.active = i
		}
		a.scenes = append(a.scenes, s)
	}
	return a, nil
}

func (a *App) onMeteor(idx int) {
	if idx == a.active && a.chime != nil {
		a.chime.Play()
	}
}

// Active returns the active scene
func (a *App) Active() *scene.Scene {
	return a.scenes[a.active]
}

// SetActive switches the visible section; the others fade out and lose the pointer
func (a *App) SetActive(idx int) {
	if idx < 0 || idx >= len(a.scenes) || idx == a.active {
		return
	}
	a.Active().PointerLeave()
	a.dragging = false
	a.active = idx
	for i, s := range a.scenes {
		s.Handle().SetActive(i == idx)
	}
	log.Printf("section %s active", a.Active().Name())
}

// cellToPixel maps a terminal cell to the centre of its top half-block pixel row pair
func cellToPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, (float64(y) + 0.5) * 2
}

// handleInput applies one terminal event; returns false to quit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			a.SetActive((a.active + 1) % len(a.scenes))
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case '1', '2', '3':
				a.SetActive(int(r - '1'))
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.resize(ev.Size())
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	s := a.Active()
	px, py := cellToPixel(ev.Position())
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		s.Wheel(-parameter.WheelStep)
		return
	case buttons&tcell.WheelDown != 0:
		s.Wheel(parameter.WheelStep)
		return
	}

	down := buttons&tcell.Button1 != 0
	switch {
	case down && !a.dragging:
		a.dragging = true
		s.PointerDown(px, py)
	case !down && a.dragging:
		a.dragging = false
		s.PointerUp()
	}
	s.PointerMove(px, py)
}

func (a *App) resize(cols, rows int) {
	a.buf.Resize(cols, rows)
	w, h := a.buf.Size()
	for _, s := range a.scenes {
		s.Resize(w, h)
	}
	if a.screen != nil {
		a.screen.Sync()
	}
	log.Printf("resized to %dx%d cells", cols, rows)
}

// Frame advances and composites every scene, then flushes to the screen
func (a *App) Frame() {
	a.buf.Clear()
	for _, s := range a.scenes {
		s.Frame()
	}
	if a.screen != nil {
		a.buf.Flush(a.screen)
		a.screen.Show()
	}
}

// Run drives frames on a ticker until the user quits or the screen closes
func (a *App) Run(period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	inputCh := startInputReader(a.screen)

	for range ticker.C {
		// Drain input non-blocking
	drainInput:
		for {
			select {
			case ev, ok := <-inputCh:
				if !ok || !a.handleInput(ev) {
					return
				}
			default:
				break drainInput
			}
		}
		a.Frame()
	}
}

// startInputReader polls the screen on its own goroutine; the channel closes with the screen
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}()
	return ch
}

// Close releases scenes, audio and the terminal
func (a *App) Close() {
	for _, s := range a.scenes {
		s.Close()
	}
	if a.chime != nil {
		a.chime.Close()
	}
	if a.screen != nil {
		a.screen.Fini()
	}
}
