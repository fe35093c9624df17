// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-star-shooter/internal/app"
	"go-star-shooter/internal/assets"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	hudMargin        = 16
	weaponIconRadius = 18.0
)

// HUD draws the in-run overlay from an app.HUDView snapshot.
type HUD struct {
	assets *assets.Assets
	health *PlayerHealthIndicator
}

func NewHUD(a *assets.Assets) *HUD {
	return &HUD{
		assets: a,
		health: NewPlayerHealthIndicator(hudMargin, 40, a.Fonts.Small),
	}
}

func weaponColor(k defs.WeaponKind) color.RGBA {
	if k == defs.WeaponRed {
		return config.RedWeaponColor
	}
	return config.BlueWeaponColor
}

func (h *HUD) Draw(screen *ebiten.Image, v app.HUDView) {
	sh := h.assets.Shapes
	fonts := h.assets.Fonts

	h.health.Draw(screen, sh, v.HP, v.MaxHP, v.ShieldHP, v.ShieldMax)

	// Счёт и таймер справа сверху
	kills := fmt.Sprintf("kills %d/%d", v.Kills, v.KillGoal)
	b := text.BoundString(fonts.Regular, kills)
	text.Draw(screen, kills, fonts.Regular, config.ScreenWidth-hudMargin-b.Dx(), 34, config.TextLightColor)
	clock := app.FormatClock(v.Left)
	b = text.BoundString(fonts.Small, clock)
	text.Draw(screen, clock, fonts.Small, config.ScreenWidth-hudMargin-b.Dx(), 56, config.TextDimColor)

	h.drawWeapons(screen, v)

	ammoColor := config.TextLightColor
	if v.AmmoWarn {
		ammoColor = config.RedWeaponColor
	}
	y := config.ScreenHeight - hudMargin
	text.Draw(screen, v.AmmoLabel, fonts.Regular, hudMargin+110, y-8, ammoColor)
	if v.ReloadLabel != "" {
		text.Draw(screen, v.ReloadLabel, fonts.Small, hudMargin+110, y-32, config.ReloadColor)
	}
	if v.Flash != "" {
		b := text.BoundString(fonts.Large, v.Flash)
		text.Draw(screen, v.Flash, fonts.Large, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2+120, config.DamageTextColor)
	}
}

// drawWeapons рисует иконки оружия 1 и 2 с кольцом перезарядки.
func (h *HUD) drawWeapons(screen *ebiten.Image, v app.HUDView) {
	sh := h.assets.Shapes
	for k, w := range v.Weapons {
		cx := float32(hudMargin+weaponIconRadius) + float32(k)*(weaponIconRadius*2+12)
		cy := float32(config.ScreenHeight-hudMargin) - weaponIconRadius
		c := weaponColor(w.Kind)
		if !w.Active {
			c = render.DarkenColor(c, 0.45)
		}
		sh.Disc(screen, cx, cy, weaponIconRadius-4, c)
		if w.Active {
			sh.Ring(screen, cx, cy, weaponIconRadius, 2, config.TextLightColor)
		}
		if w.Reloading {
			start := float32(-math.Pi / 2)
			end := start + float32(2*math.Pi*w.Reload)
			sh.Arc(screen, cx, cy, weaponIconRadius+3, start, end, 3, config.ReloadColor)
		}
		if w.Firing {
			sh.Ring(screen, cx, cy, weaponIconRadius+5, 2, render.WithAlpha(config.RedWeaponColor, 0.6))
		}
		label := fmt.Sprint(k + 1)
		text.Draw(screen, label, h.assets.Fonts.Small, int(cx)-4, int(cy)+5, config.BackgroundColor)
	}
}

// ResultTitle returns the headline shown when the run ends.
func ResultTitle(r component.RunResult) string {
	if r == component.ResultVictory {
		return "VICTORY"
	}
	return "DEFEAT"
}
