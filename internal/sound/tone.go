package sound

import (
	"math"

	"github.com/faiface/beep"
)

// tone is a beep.Streamer that synthesizes a single decaying sine blip.
// It keeps its own phase so consecutive Stream calls stay continuous.
type tone struct {
	sampleRate beep.SampleRate
	freq       float64
	phase      float64
	pos        int
	total      int
}

func newTone(sr beep.SampleRate, freq float64, d float64) *tone {
	return &tone{
		sampleRate: sr,
		freq:       freq,
		total:      int(float64(sr) * d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := len(samples)
	if remaining := t.total - t.pos; n > remaining {
		n = remaining
	}
	step := t.freq / float64(t.sampleRate)
	for i := 0; i < n; i++ {
		// Linear fade-out keeps the blip click-free.
		env := 1 - float64(t.pos)/float64(t.total)
		v := 0.25 * env * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
