package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies and lengths for the two game blips
const (
	paddleHitFreq = 880.0
	paddleHitLen  = 50 * time.Millisecond
	scoreFreq     = 330.0
	scoreLen      = 120 * time.Millisecond
)

// Engine plays short generated blips through the speaker. Initialization
// failure degrades to a permanent no-op; the game never depends on audio
// being available.
type Engine struct {
	disabled atomic.Bool
	muted    atomic.Bool
}

// NewEngine initializes the speaker. The returned engine is usable even
// when initialization fails; it just stays silent.
func NewEngine() *Engine {
	e := &Engine{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		e.disabled.Store(true)
	}
	return e
}

// SetMuted sets the mute state
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// PaddleHit plays the paddle collision blip, fire-and-forget
func (e *Engine) PaddleHit() {
	e.play(paddleHitFreq, paddleHitLen)
}

// Score plays the scoring blip, fire-and-forget
func (e *Engine) Score() {
	e.play(scoreFreq, scoreLen)
}

func (e *Engine) play(freq float64, length time.Duration) {
	if e.disabled.Load() || e.muted.Load() {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(length), sine))
}

// Close releases the speaker
func (e *Engine) Close() {
	if !e.disabled.Load() {
		speaker.Close()
	}
}
