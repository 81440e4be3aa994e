// Package feedback plays a short tone whenever a marker is drawn.
package feedback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneFreq     = 880.0
	toneDuration = 50 * time.Millisecond
)

// Beeper plays a click tone through the default audio device. A Beeper that
// failed to initialize stays silent.
type Beeper struct {
	mu          sync.Mutex
	initialized bool
}

// NewBeeper returns a silent Beeper. Call Initialize to enable sound.
func NewBeeper() *Beeper {
	return &Beeper{}
}

// Initialize opens the audio device.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	b.initialized = true
	return nil
}

// Marked plays the tone. Coordinates are ignored.
func (b *Beeper) Marked(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	s, err := tone(sampleRate, toneFreq, toneDuration)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the audio device.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Close()
	b.initialized = false
}

// tone builds a sine streamer of the given length.
func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(d), sine), nil
}
