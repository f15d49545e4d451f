package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone_EmitsExactSampleBudget(t *testing.T) {
	tn := newTone(sampleRate, 440, 0.05)
	want := int(float64(sampleRate) * 0.05)

	var got int
	buf := make([][2]float64, 512)
	for {
		n, ok := tn.Stream(buf)
		got += n
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.Equal(t, buf[i][0], buf[i][1], "blip is mono")
		}
		if !ok {
			break
		}
	}

	assert.Equal(t, want, got)
	require.NoError(t, tn.Err())

	// Drained streamers stay drained.
	n, ok := tn.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestTone_FadesToSilence(t *testing.T) {
	tn := newTone(sampleRate, 440, 0.01)
	buf := make([][2]float64, tn.total)
	n, _ := tn.Stream(buf)
	require.Equal(t, tn.total, n)

	// The linear envelope puts the last samples near zero.
	last := buf[n-1][0]
	assert.InDelta(t, 0, last, 0.01)
}

func TestSilentPlayerIsSafe(t *testing.T) {
	var p *Player
	p.Grab() // nil receiver must not panic

	silent := &Player{}
	silent.Grab()
	silent.Release()
}
