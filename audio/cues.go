// Package audio plays short synthesized cues for snapshot transitions.
// It listens to the simulation like any renderer and never feeds back into it.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"gridsnake/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound event derived from two consecutive snapshots
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueLevelUp
	CueGameOver
	CueWin
)

// Classify derives the cue for the step from prev to next. A new round
// (different RoundID) is silent.
func Classify(prev, next game.Snapshot) Cue {
	if prev.RoundID != next.RoundID {
		return CueNone
	}
	switch {
	case next.GameOver && !prev.GameOver && next.Won:
		return CueWin
	case next.GameOver && !prev.GameOver:
		return CueGameOver
	case next.Level > prev.Level:
		return CueLevelUp
	case next.Score > prev.Score:
		return CueEat
	}
	return CueNone
}

// Cues is a game.SnapshotSink that plays a tone for every cue
type Cues struct {
	enabled bool
	volume  float64
	last    game.Snapshot
	seen    bool
	play    func(beep.Streamer)
}

// NewCues returns a silent sink; call Init to open the speaker
func NewCues() *Cues {
	return &Cues{
		volume: -1,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Init opens the default audio device. On error the sink stays silent.
func (c *Cues) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.enabled = true
	return nil
}

func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}

func (c *Cues) UpdateState(s game.Snapshot) {
	prev, seen := c.last, c.seen
	c.last, c.seen = s, true
	if !seen || !c.enabled {
		return
	}
	if streamer := c.streamerFor(Classify(prev, s)); streamer != nil {
		c.play(streamer)
	}
}

func (c *Cues) streamerFor(cue Cue) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueEat:
		s = NewTone(660, 990, 70*time.Millisecond, WaveSine, sampleRate)
	case CueLevelUp:
		s = beep.Seq(
			NewTone(523, 523, 80*time.Millisecond, WaveTriangle, sampleRate),
			NewTone(784, 784, 120*time.Millisecond, WaveTriangle, sampleRate),
		)
	case CueGameOver:
		s = NewTone(330, 110, 400*time.Millisecond, WaveSquare, sampleRate)
	case CueWin:
		chord, err := generators.SineTone(sampleRate, 880)
		if err != nil {
			return nil
		}
		s = beep.Seq(
			NewTone(523, 1046, 200*time.Millisecond, WaveTriangle, sampleRate),
			beep.Take(sampleRate.N(250*time.Millisecond), chord),
		)
	default:
		return nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: c.volume}
}
