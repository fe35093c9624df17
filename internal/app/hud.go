// internal/app/hud.go
package app

import (
	"fmt"
	"time"

	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
)

// WeaponView is what the HUD shows for one weapon slot.
type WeaponView struct {
	Kind      defs.WeaponKind
	Active    bool
	Ammo      int
	AmmoMax   int
	Reloading bool
	Reload    float64 // прогресс перезарядки 0..1
	Firing    bool
}

// HUDView — снимок всего, что рисует HUD.
type HUDView struct {
	HP, MaxHP           int
	ShieldHP, ShieldMax int
	Kills, KillGoal     int
	Elapsed, Left       time.Duration
	Weapons             [defs.WeaponCount]WeaponView
	AmmoLabel           string
	AmmoWarn            bool
	ReloadLabel         string
	Flash               string
	GameOver            bool
	Result              component.RunResult
}

// HUD builds the current HUD snapshot.
func (g *Game) HUD() HUDView {
	w := g.World
	now := g.Clock.Now()
	run := &w.Run
	end := now
	if run.GameOver {
		end = run.EndedAt
	}
	v := HUDView{
		HP:       run.PlayerHP,
		MaxHP:    run.PlayerMaxHP,
		Kills:    run.KillCount,
		KillGoal: config.KillGoal,
		Elapsed:  run.Survived(end),
		GameOver: run.GameOver,
		Result:   run.Result,
	}
	v.Left = config.SurvivalGoal - v.Elapsed
	if v.Left < 0 {
		v.Left = 0
	}
	if sh := w.Player.Shield; sh != nil {
		v.ShieldHP, v.ShieldMax = sh.HP, sh.MaxHP
	}
	for k := range w.Weapons {
		slot := &w.Weapons[k]
		wv := WeaponView{
			Kind:      slot.Kind(),
			Active:    defs.WeaponKind(k) == w.ActiveWeapon,
			Ammo:      slot.Ammo,
			AmmoMax:   slot.Def.AmmoMax,
			Reloading: slot.Reloading,
			Firing:    slot.BeamRemaining(now) > 0,
		}
		if slot.Reloading && slot.Def.ReloadDuration > 0 {
			wv.Reload = 1 - float64(slot.ReloadRemaining(now))/float64(slot.Def.ReloadDuration)
		}
		v.Weapons[k] = wv
	}
	v.AmmoLabel, v.AmmoWarn = AmmoLabel(w.ActiveSlot(), now)
	if slot := w.ActiveSlot(); slot.Reloading {
		v.ReloadLabel = "reloading " + seconds(slot.ReloadRemaining(now))
	}
	if now < w.AmmoFlash.Until {
		v.Flash = w.AmmoFlash.Text
	}
	return v
}

// AmmoLabel возвращает надпись о патронах слота и признак предупреждения.
func AmmoLabel(slot *component.WeaponSlot, now time.Duration) (string, bool) {
	if slot.Def.Mode == defs.FireBeam {
		switch {
		case slot.Reloading:
			return "ammo " + seconds(slot.ReloadRemaining(now)), true
		case slot.BeamRemaining(now) > 0:
			return "ammo " + seconds(slot.BeamRemaining(now)), false
		default:
			return "ammo ready", false
		}
	}
	return fmt.Sprintf("ammo %d/%d", slot.Ammo, slot.Def.AmmoMax), slot.Reloading || slot.Ammo <= 0
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatClock renders d as m:ss.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
