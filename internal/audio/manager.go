// internal/audio/manager.go
package audio

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"go-star-shooter/internal/config"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/sound"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// maxEffectLength ограничивает длину буфера любого эффекта.
const maxEffectLength = 3 * time.Second

// Manager — проигрывает синтезированные эффекты и зацикленную музыку.
// Settings читаются при каждом вызове, переключатели действуют сразу.
type Manager struct {
	ctx      *audio.Context
	settings *config.Settings
	effects  map[sound.Effect][]byte
	music    map[config.MusicTrack]*audio.Player
	playing  config.MusicTrack
	attached *event.Dispatcher
}

// NewManager рендерит банк звуков и открывает аудиоконтекст.
func NewManager(settings *config.Settings) (*Manager, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(sound.SampleRate))
	}
	m := &Manager{
		ctx:      ctx,
		settings: settings,
		effects:  make(map[sound.Effect][]byte),
		music:    make(map[config.MusicTrack]*audio.Player),
	}
	for _, e := range sound.Effects() {
		m.effects[e] = sound.Render(sound.Build(e), maxEffectLength)
	}
	for _, track := range []config.MusicTrack{config.TrackCosmic, config.TrackChill} {
		length := sound.LoopLength(track)
		pcm := sound.Render(sound.Music(track), length)
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("failed to create music player %s: %w", track, err)
		}
		m.music[track] = p
	}
	log.Printf("Audio ready: %d effects, %d music tracks", len(m.effects), len(m.music))
	return m, nil
}

// Play запускает разовый эффект, если эффекты не выключены.
func (m *Manager) Play(e sound.Effect) {
	if m == nil || !m.settings.SfxEnabled {
		return
	}
	pcm, ok := m.effects[e]
	if !ok {
		return
	}
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(sound.Volume[e])
	p.Play()
}

// OnEvent plays the cue for a gameplay event.
func (m *Manager) OnEvent(e event.Event) {
	if fx, ok := sound.Cue(e); ok {
		m.Play(fx)
	}
}

// Attach подписывается на все звуковые события d вместо прежнего диспетчера.
func (m *Manager) Attach(d *event.Dispatcher) {
	if m == nil {
		return
	}
	m.Detach()
	for _, t := range sound.CueEvents {
		d.Subscribe(t, m)
	}
	m.attached = d
}

// Detach отписывается от текущего диспетчера.
func (m *Manager) Detach() {
	if m == nil || m.attached == nil {
		return
	}
	for _, t := range sound.CueEvents {
		m.attached.Unsubscribe(t, m)
	}
	m.attached = nil
}

// SyncMusic приводит музыку в соответствие с настройками.
func (m *Manager) SyncMusic() {
	if m == nil {
		return
	}
	vol := m.settings.EffectiveMusicVolume()
	want := m.settings.MusicTrack
	for track, p := range m.music {
		if track != want || vol <= 0 {
			if p.IsPlaying() {
				p.Pause()
			}
			continue
		}
		p.SetVolume(vol)
		if !p.IsPlaying() {
			if track != m.playing {
				if err := p.Rewind(); err != nil {
					log.Printf("failed to rewind music %s: %v", track, err)
				}
			}
			p.Play()
		}
	}
	m.playing = want
}

// StopMusic ставит на паузу играющий трек.
func (m *Manager) StopMusic() {
	if m == nil {
		return
	}
	for _, p := range m.music {
		p.Pause()
	}
}
