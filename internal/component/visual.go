// internal/component/visual.go
package component

import (
	"image/color"
	"time"

	"go-star-shooter/pkg/geom"
)

// EffectKind — вид кратковременного эффекта.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectDamageNumber
)

// Effect — короткоживущий визуальный эффект.
type Effect struct {
	Kind      EffectKind
	Pos       geom.Vec2
	Color     color.RGBA
	Text      string
	MaxRadius float64
	StartedAt time.Duration
	Duration  time.Duration
}

// Progress returns 0..1 through the effect's life.
func (e *Effect) Progress(now time.Duration) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(now-e.StartedAt) / float64(e.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Flash — сообщение HUD, видимое до Until.
type Flash struct {
	Text  string
	Until time.Duration
}
