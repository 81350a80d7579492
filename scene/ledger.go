package scene

import "github.com/Saatvik1911/mystic-particle-dreams/parameter"

// Clock is the fixed-step virtual clock
// Each tick advances time by TimeStep and reports FrameMillis to the spawner
type Clock struct {
	t      float64
	frames uint64
}

// Tick advances one frame and returns the new time and the nominal frame duration in ms
func (c *Clock) Tick() (t, dtMs float64) {
	c.frames++
	c.t = float64(c.frames) * parameter.TimeStep
	return c.t, parameter.FrameMillis
}

// Time returns the virtual time of the last tick
func (c *Clock) Time() float64 { return c.t }

// Frames returns the number of ticks so far
func (c *Clock) Frames() uint64 { return c.frames }

// Ledger tracks every live resource a scene allocated so Close can release them all
type Ledger struct {
	live map[any]func()
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{live: make(map[any]func())}
}

// Track registers key with its release function; tracking a key twice keeps the first
func (l *Ledger) Track(key any, release func()) {
	if _, ok := l.live[key]; ok {
		return
	}
	l.live[key] = release
}

// Release runs and forgets the release function of key, no-op for unknown keys
func (l *Ledger) Release(key any) {
	release, ok := l.live[key]
	if !ok {
		return
	}
	delete(l.live, key)
	release()
}

// ReleaseAll releases every tracked resource
func (l *Ledger) ReleaseAll() {
	for key := range l.live {
		l.Release(key)
	}
}

// Live returns the count of tracked resources not yet released
func (l *Ledger) Live() int {
	if l == nil {
		return 0
	}
	return len(l.live)
}
