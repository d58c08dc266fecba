// Package audio plays short tones for round events through the speaker.
// It implements menagerie.Listener.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/menagerie"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tones played for each event.
var (
	FireTone      = Tone{Freq: 660, Duration: 30 * time.Millisecond}
	KillTone      = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	RoundOverTone = Tone{Freq: 220, Duration: 300 * time.Millisecond}
)

// Player sounds tones through a sink. The zero value is silent.
type Player struct {
	sink func(beep.Streamer)
}

var initOnce sync.Once
var initErr error

// NewPlayer initializes the speaker. When audio is unavailable the error is
// returned along with a silent player, so the game can run without sound.
func NewPlayer() (*Player, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if initErr != nil {
		return &Player{}, initErr
	}
	return &Player{sink: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.sink != nil {
		speaker.Close()
		p.sink = nil
	}
}

// Play sounds t without waiting for it to finish.
func (p *Player) Play(t Tone) {
	if p == nil || p.sink == nil {
		return
	}
	s, err := Stream(t)
	if err != nil {
		return
	}
	p.sink(s)
}

// Stream returns the samples of t.
func Stream(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

// Listener returns a menagerie.Listener that plays the event tones.
func (p *Player) Listener() menagerie.Listener {
	return listener{p}
}

type listener struct {
	p *Player
}

func (l listener) OnFire() {
	l.p.Play(FireTone)
}

func (l listener) OnKill(core.Critter) {
	l.p.Play(KillTone)
}

func (l listener) OnRoundOver(menagerie.Result) {
	l.p.Play(RoundOverTone)
}
