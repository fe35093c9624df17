// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-star-shooter/internal/config"
	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	HealthSegmentWidth   = 28.0
	HealthSegmentHeight  = 12.0
	HealthSegmentSpacing = 4.0
	ShieldPipRadius      = 5.0
)

// PlayerHealthIndicator отображает здоровье игрока сегментами и щит точками под ними.
type PlayerHealthIndicator struct {
	X, Y float32
	Face font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Face: face}
}

// segmentColor: последний сегмент красный, половина и меньше — оранжевые.
func segmentColor(health, maxHealth int) color.RGBA {
	switch {
	case health <= 1:
		return config.RedWeaponColor
	case health*2 <= maxHealth:
		return config.ReloadColor
	}
	return config.HealthColor
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, shapes *render.Shapes, health, maxHealth, shield, shieldMax int) {
	fill := segmentColor(health, maxHealth)
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j)*(HealthSegmentWidth+HealthSegmentSpacing)
		c := config.HealthEmptyColor
		if j < health {
			c = fill
		}
		shapes.Rect(screen, x, i.Y, HealthSegmentWidth, HealthSegmentHeight, c)
		shapes.Frame(screen, x, i.Y, HealthSegmentWidth, HealthSegmentHeight, 1, config.TextDimColor)
	}

	healthText := "HP " + strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, healthText, i.Face, int(i.X), int(i.Y)-6, config.TextLightColor)

	// Щит
	for j := 0; j < shieldMax; j++ {
		cx := i.X + ShieldPipRadius + float32(j)*(ShieldPipRadius*2+HealthSegmentSpacing)
		cy := i.Y + HealthSegmentHeight + 10
		if j < shield {
			shapes.Disc(screen, cx, cy, ShieldPipRadius, config.PlayerShieldColor)
		} else {
			shapes.Ring(screen, cx, cy, ShieldPipRadius, 1, config.TextDimColor)
		}
	}
}

// Height returns the indicator height below Y.
func (i *PlayerHealthIndicator) Height() float32 {
	return HealthSegmentHeight + 10 + ShieldPipRadius*2
}
