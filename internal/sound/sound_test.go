package sound

import (
	"testing"
	"time"

	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/event"

	"github.com/gopxl/beep"
)

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, SampleRate)
	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := SampleRate.N(100 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if v := buf[n-1][0]; v > 0.01 || v < -0.01 {
		t.Errorf("Expected near-silent last sample, got %v", v)
	}
	if mid := buf[n/2][0]; mid != 1 && mid != -1 {
		t.Errorf("Expected full level in the sustain, got %v", mid)
	}
}

func TestRenderProducesStereoPCM(t *testing.T) {
	pcm := Render(Build(EffectShot), time.Second)
	if len(pcm) == 0 || len(pcm)%4 != 0 {
		t.Fatalf("Expected whole 16-bit stereo frames, got %d bytes", len(pcm))
	}
	if max := SampleRate.N(70*time.Millisecond) * 4; len(pcm) > max {
		t.Errorf("Expected at most %d bytes for a 70ms shot, got %d", max, len(pcm))
	}
}

func TestRenderStopsAtLimit(t *testing.T) {
	pcm := Render(beep.Silence(-1), 10*time.Millisecond)
	if want := SampleRate.N(10*time.Millisecond) * 4; len(pcm) != want {
		t.Errorf("Expected %d bytes, got %d", want, len(pcm))
	}
}

func TestEveryEffectIsAudible(t *testing.T) {
	for _, e := range Effects() {
		pcm := Render(Build(e), 3*time.Second)
		if len(pcm) == 0 {
			t.Errorf("Expected samples for effect %d", e)
			continue
		}
		loud := false
		for i := 0; i+1 < len(pcm); i += 2 {
			if v := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8); v > 1000 || v < -1000 {
				loud = true
				break
			}
		}
		if !loud {
			t.Errorf("Expected effect %d to be audible", e)
		}
	}
}

func TestMusicLoopLength(t *testing.T) {
	for _, tr := range []config.MusicTrack{config.TrackCosmic, config.TrackChill} {
		length := LoopLength(tr)
		if length <= 0 {
			t.Fatalf("Expected positive loop length for %s", tr)
		}
		pcm := Render(Music(tr), length+time.Second)
		got := time.Duration(len(pcm)/4) * time.Second / time.Duration(SampleRate)
		if diff := got - length; diff > 50*time.Millisecond || diff < -50*time.Millisecond {
			t.Errorf("Expected %s loop of %v, got %v", tr, length, got)
		}
	}
}

func TestCues(t *testing.T) {
	cases := []struct {
		e    event.Event
		want Effect
		ok   bool
	}{
		{event.Event{Type: event.WeaponFired, Data: event.WeaponData{Weapon: defs.WeaponBlue}}, EffectShot, true},
		{event.Event{Type: event.WeaponFired, Data: event.WeaponData{Weapon: defs.WeaponRed}}, EffectBeam, true},
		{event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: 1, HP: 3}}, EffectPlayerHit, true},
		{event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: 3, HP: 0}}, EffectPlayerDeath, true},
		{event.Event{Type: event.ReloadFinished, Data: event.ReloadFinishedData{Weapon: defs.WeaponRed, Active: true}}, EffectReloadBeam, true},
		{event.Event{Type: event.ReloadFinished, Data: event.ReloadFinishedData{Weapon: defs.WeaponBlue, Active: false}}, 0, false},
		{event.Event{Type: event.GameEnded, Data: event.GameEndedData{Result: component.ResultVictory}}, EffectVictory, true},
		{event.Event{Type: event.GameEnded, Data: event.GameEndedData{Result: component.ResultDefeat}}, 0, false},
		{event.Event{Type: event.EnemySpawned}, 0, false},
	}
	for i, c := range cases {
		got, ok := Cue(c.e)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("case %d: expected (%d, %v), got (%d, %v)", i, c.want, c.ok, got, ok)
		}
	}
}
