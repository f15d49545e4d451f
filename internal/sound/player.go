// Package sound plays short synthesized feedback blips when a ring is
// grabbed or released. It is strictly optional: if the audio device cannot
// be opened the player degrades to silence.
package sound

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays the puzzle's feedback sounds. The zero value is a silent
// player; use NewPlayer to open the speaker.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On failure it returns a silent player
// together with the error so the caller can log and carry on.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Grab plays the ring-grabbed blip.
func (p *Player) Grab() {
	p.play(660, 0.05)
}

// Release plays the ring-released blip.
func (p *Player) Release() {
	p.play(440, 0.07)
}

func (p *Player) play(freq, seconds float64) {
	if p == nil || !p.enabled {
		return
	}
	speaker.Play(newTone(sampleRate, freq, seconds))
}
