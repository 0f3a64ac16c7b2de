package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweepGenerator produces the launch whoosh: a sine chirp with a fade-out
type sweepGenerator struct {
	sr         beep.SampleRate
	from, to   float64
	amplitude  float64
	pos, total int
	phase      float64
}

// NewSweepGenerator creates a finite frequency sweep from one pitch to another
func NewSweepGenerator(sr beep.SampleRate, from, to, amplitude float64, d time.Duration) beep.Streamer {
	return &sweepGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		total:     sr.N(d),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		// Quick attack, linear release
		env := math.Min(progress/0.05, 1.0) * (1 - progress)
		sample := g.amplitude * env * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// thudGenerator produces the ground impact: low sine plus noise under an exponential decay
type thudGenerator struct {
	sr         beep.SampleRate
	freq       float64
	amplitude  float64
	decay      float64
	pos, total int
	seed       uint32
}

// NewThudGenerator creates a finite impact sound
func NewThudGenerator(sr beep.SampleRate, freq, amplitude, decay float64, d time.Duration) beep.Streamer {
	return &thudGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
		decay:     decay,
		total:     sr.N(d),
		seed:      0x2545f491,
	}
}

func (g *thudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)

		// xorshift keeps the noise deterministic across runs
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := g.amplitude * env * (0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thudGenerator) Err() error { return nil }
