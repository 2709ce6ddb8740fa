package app

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const beeperSampleRate = beep.SampleRate(44100)

// Beeper plays a short tone when input is rejected. Audio is best-effort:
// init failure means the app simply runs silent.
type Beeper struct {
	sampleRate beep.SampleRate
}

// NewBeeper initializes the speaker. The returned error is informational;
// callers continue without sound.
func NewBeeper() (*Beeper, error) {
	sr := beeperSampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Beeper{sampleRate: sr}, nil
}

// PlayReject plays a low buzz for a rejected transition. Safe on a nil
// receiver so the loop can call it unconditionally.
func (b *Beeper) PlayReject() {
	if b == nil {
		return
	}

	sine, err := generators.SineTone(b.sampleRate, 220)
	if err != nil {
		return
	}
	duration := b.sampleRate.N(60 * time.Millisecond)
	speaker.Play(beep.Take(duration, sine))
}

// Close releases the speaker.
func (b *Beeper) Close() {
	if b == nil {
		return
	}
	speaker.Close()
}
