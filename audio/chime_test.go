package audio

import (
	"math"
	"testing"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

func TestPingGenerator_Envelope(t *testing.T) {
	g, err := NewPingGenerator(sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, sampleRate.N(parameter.ChimeDuration))
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if g.Err() != nil {
		t.Fatal("Err should be nil")
	}

	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, attack should start silent", buf[0][0])
	}

	peak := func(from, to int) float64 {
		p := 0.0
		for _, s := range buf[from:to] {
			if s[0] != s[1] {
				t.Fatal("channels differ")
			}
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}
	window := sampleRate.N(parameter.ChimeDuration) / 10
	early := peak(0, window)
	late := peak(len(buf)-window, len(buf))
	if early > parameter.ChimeVolume+1e-9 {
		t.Errorf("peak %v exceeds volume %v", early, parameter.ChimeVolume)
	}
	if !(late < early/4) {
		t.Errorf("tail peak %v should decay well below head %v", late, early)
	}
}

func TestPing_Finite(t *testing.T) {
	s, err := Ping()
	if err != nil {
		t.Fatal(err)
	}
	want := sampleRate.N(parameter.ChimeDuration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatal("ping did not end")
		}
	}
	if total != want {
		t.Errorf("samples = %d, want %d", total, want)
	}
}

func TestChime_UninitializedIsSilent(t *testing.T) {
	c := NewChime()
	c.Play()
	c.Close()
	if c.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Init", c.mixer.Len())
	}
}
