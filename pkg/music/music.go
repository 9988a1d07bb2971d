// Package music plays short synthesized cues for game events. Tones
// are generated, so no audio assets ship with the binary.
package music

import (
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// Open gates all playback; the config turns it off.
var Open = true

const sampleRate = beep.SampleRate(44100)

var initOnce sync.Once

func initSpeaker() bool {
	ok := true
	initOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Printf("speaker init failed, sound disabled: %v", err)
			Open = false
			ok = false
		}
	})
	return ok && Open
}

func tone(freq int, d time.Duration) beep.Streamer {
	s, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), s)
}

func play(streamers ...beep.Streamer) {
	if !initSpeaker() {
		return
	}
	speaker.Play(beep.Seq(streamers...))
}

// PlayMove clicks for an ordinary edge claim.
func PlayMove() {
	play(tone(660, 60*time.Millisecond))
}

// PlayScore rings for a closed box.
func PlayScore() {
	play(tone(880, 90*time.Millisecond), tone(1100, 90*time.Millisecond))
}

// PlayGameOver plays the end-of-game chime.
func PlayGameOver() {
	play(
		tone(660, 120*time.Millisecond),
		tone(880, 120*time.Millisecond),
		tone(1320, 200*time.Millisecond),
	)
}
