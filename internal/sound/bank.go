// internal/sound/bank.go
package sound

import (
	"time"

	"go-star-shooter/internal/config"

	"github.com/gopxl/beep"
)

// Effect — имя разового звука.
type Effect int

const (
	EffectShot Effect = iota
	EffectBeam
	EffectEnemyShot
	EffectExplode
	EffectPlayerHit
	EffectPlayerDeath
	EffectShieldHit
	EffectShieldBreak
	EffectReload
	EffectReloadBeam
	EffectPickup
	EffectClick
	EffectVictory
	EffectIntro
	effectCount
)

// Effects — все эффекты в порядке банка.
func Effects() []Effect {
	out := make([]Effect, effectCount)
	for i := range out {
		out[i] = Effect(i)
	}
	return out
}

// Volume is the mix level each effect is played at, before the sfx setting.
var Volume = [effectCount]float64{
	EffectShot:        0.35,
	EffectBeam:        0.45,
	EffectEnemyShot:   0.25,
	EffectExplode:     0.7,
	EffectPlayerHit:   0.8,
	EffectPlayerDeath: 0.9,
	EffectShieldHit:   0.5,
	EffectShieldBreak: 0.6,
	EffectReload:      0.75,
	EffectReloadBeam:  0.7,
	EffectPickup:      0.6,
	EffectClick:       0.7,
	EffectVictory:     0.8,
	EffectIntro:       0.6,
}

const ms = time.Millisecond

// Build синтезирует один эффект.
func Build(e Effect) beep.Streamer {
	switch e {
	case EffectShot:
		return tone(950, 420, 70*ms, 2*ms, 40*ms, WaveSquare, 0.5)
	case EffectBeam:
		return beep.Mix(
			tone(180, 260, 400*ms, 30*ms, 150*ms, WaveSaw, 0.5),
			tone(720, 1040, 400*ms, 30*ms, 150*ms, WaveSine, 0.3),
		)
	case EffectEnemyShot:
		return tone(520, 300, 90*ms, 2*ms, 60*ms, WaveTriangle, 0.5)
	case EffectExplode:
		return beep.Mix(
			tone(0, 0, 350*ms, 2*ms, 300*ms, WaveNoise, 0.7),
			tone(120, 40, 350*ms, 2*ms, 300*ms, WaveSine, 0.6),
		)
	case EffectPlayerHit:
		return tone(240, 120, 120*ms, 2*ms, 80*ms, WaveSaw, 0.6)
	case EffectPlayerDeath:
		return beep.Seq(
			beep.Mix(
				tone(0, 0, 600*ms, 2*ms, 500*ms, WaveNoise, 0.8),
				tone(200, 30, 600*ms, 2*ms, 500*ms, WaveSaw, 0.5),
			),
			tone(60, 40, 400*ms, 10*ms, 350*ms, WaveSine, 0.6),
		)
	case EffectShieldHit:
		return tone(1400, 900, 80*ms, 2*ms, 60*ms, WaveSine, 0.6)
	case EffectShieldBreak:
		return beep.Seq(
			tone(1400, 700, 90*ms, 2*ms, 40*ms, WaveTriangle, 0.6),
			tone(700, 300, 160*ms, 2*ms, 120*ms, WaveNoise, 0.4),
		)
	case EffectReload:
		return beep.Seq(
			tone(300, 300, 50*ms, 2*ms, 30*ms, WaveSquare, 0.4),
			beep.Silence(SampleRate.N(60*ms)),
			tone(600, 600, 60*ms, 2*ms, 40*ms, WaveSquare, 0.4),
		)
	case EffectReloadBeam:
		return tone(200, 900, 350*ms, 20*ms, 100*ms, WaveSine, 0.6)
	case EffectPickup:
		return beep.Seq(
			tone(660, 660, 70*ms, 2*ms, 40*ms, WaveSine, 0.6),
			tone(990, 990, 110*ms, 2*ms, 80*ms, WaveSine, 0.6),
		)
	case EffectClick:
		return tone(1800, 1800, 25*ms, 1*ms, 20*ms, WaveSquare, 0.4)
	case EffectVictory:
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 140*ms, WaveTriangle, 0.6)
	case EffectIntro:
		return beep.Mix(
			tone(110, 220, 1500*ms, 400*ms, 800*ms, WaveSaw, 0.25),
			tone(55, 55, 1500*ms, 400*ms, 800*ms, WaveSine, 0.5),
		)
	}
	return beep.Silence(0)
}

func arpeggio(freqs []float64, step time.Duration, wave WaveType, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, f, step, 5*ms, step/2, wave, vol)
	}
	return beep.Seq(notes...)
}

// note — нота мелодии: частота (0 — пауза) и длина в долях.
type note struct {
	freq  float64
	beats float64
}

type track struct {
	bpm   float64
	wave  WaveType
	lead  []note
	bass  []note
	level float64
}

var tracks = map[config.MusicTrack]track{
	config.TrackCosmic: {
		bpm:  96,
		wave: WaveSine,
		lead: []note{
			{440, 1}, {523.25, 1}, {659.25, 2}, {587.33, 1}, {523.25, 1}, {493.88, 2},
			{440, 1}, {392, 1}, {440, 2}, {0, 4},
		},
		bass: []note{
			{110, 4}, {87.31, 4}, {98, 4}, {110, 4},
		},
		level: 0.5,
	},
	config.TrackChill: {
		bpm:  80,
		wave: WaveTriangle,
		lead: []note{
			{329.63, 0.5}, {392, 0.5}, {493.88, 0.5}, {392, 0.5},
			{293.66, 0.5}, {349.23, 0.5}, {440, 0.5}, {349.23, 0.5},
			{261.63, 0.5}, {329.63, 0.5}, {392, 0.5}, {329.63, 0.5},
			{246.94, 0.5}, {293.66, 0.5}, {392, 1},
		},
		bass: []note{
			{82.41, 2}, {73.42, 2}, {65.41, 2}, {61.74, 2},
		},
		level: 0.45,
	},
}

// LoopLength returns the length of one pass of a music track.
func LoopLength(t config.MusicTrack) time.Duration {
	tr, ok := tracks[t]
	if !ok {
		return 0
	}
	return beatsDuration(tr.bpm, sumBeats(tr.bass))
}

// Music синтезирует один проход трека, зацикливает его плеер.
func Music(t config.MusicTrack) beep.Streamer {
	tr, ok := tracks[t]
	if !ok {
		tr = tracks[config.TrackCosmic]
	}
	return newVolume(beep.Mix(
		melody(tr.lead, tr.bpm, tr.wave, 0.5),
		melody(tr.bass, tr.bpm, WaveSine, 0.7),
	), tr.level)
}

func melody(notes []note, bpm float64, wave WaveType, vol float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := beatsDuration(bpm, n.beats)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(SampleRate.N(d)))
			continue
		}
		parts = append(parts, tone(n.freq, n.freq, d, 20*ms, d/3, wave, vol))
	}
	return beep.Seq(parts...)
}

func sumBeats(notes []note) float64 {
	total := 0.0
	for _, n := range notes {
		total += n.beats
	}
	return total
}

func beatsDuration(bpm, beats float64) time.Duration {
	return time.Duration(beats * 60 / bpm * float64(time.Second))
}
