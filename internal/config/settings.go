// internal/config/settings.go
package config

// MusicTrack — фоновая мелодия.
type MusicTrack string

const (
	TrackCosmic MusicTrack = "cosmic"
	TrackChill  MusicTrack = "chill"

	DefaultMusicVolume = 0.6
)

// Settings — пользовательские настройки звука. Создаются один раз при старте
// и передаются по указателю во все сцены и в аудиоплеер.
type Settings struct {
	MusicEnabled bool
	SfxEnabled   bool
	MusicVolume  float64
	MusicTrack   MusicTrack
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		MusicEnabled: true,
		SfxEnabled:   true,
		MusicVolume:  DefaultMusicVolume,
		MusicTrack:   TrackCosmic,
	}
}

// SetMusicVolume ограничивает v отрезком [0, 1]. Громкость 0 выключает музыку.
func (s *Settings) SetMusicVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.MusicVolume = v
	s.MusicEnabled = v > 0
}

func (s *Settings) ToggleSfx() {
	s.SfxEnabled = !s.SfxEnabled
}

// EffectiveMusicVolume — громкость, с которой музыка должна играть сейчас.
func (s *Settings) EffectiveMusicVolume() float64 {
	if !s.MusicEnabled {
		return 0
	}
	return s.MusicVolume
}
