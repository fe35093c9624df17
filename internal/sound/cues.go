// internal/sound/cues.go
package sound

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/event"
)

// CueEvents — игровые события, у которых есть звук.
var CueEvents = []event.EventType{
	event.WeaponFired,
	event.EnemyFired,
	event.EnemyKilled,
	event.PlayerDamaged,
	event.ShieldAbsorbed,
	event.ShieldBroken,
	event.ReloadFinished,
	event.PickupCollected,
	event.GameEnded,
}

// Cue выбирает эффект для игрового события.
func Cue(e event.Event) (Effect, bool) {
	switch e.Type {
	case event.WeaponFired:
		if d, ok := e.Data.(event.WeaponData); ok && d.Weapon == defs.WeaponRed {
			return EffectBeam, true
		}
		return EffectShot, true
	case event.EnemyFired:
		return EffectEnemyShot, true
	case event.EnemyKilled:
		return EffectExplode, true
	case event.PlayerDamaged:
		if d, ok := e.Data.(event.PlayerDamagedData); ok && d.HP == 0 {
			return EffectPlayerDeath, true
		}
		return EffectPlayerHit, true
	case event.ShieldAbsorbed:
		return EffectShieldHit, true
	case event.ShieldBroken:
		return EffectShieldBreak, true
	case event.ReloadFinished:
		d, ok := e.Data.(event.ReloadFinishedData)
		if !ok || !d.Active {
			return 0, false
		}
		if d.Weapon == defs.WeaponRed {
			return EffectReloadBeam, true
		}
		return EffectReload, true
	case event.PickupCollected:
		return EffectPickup, true
	case event.GameEnded:
		if d, ok := e.Data.(event.GameEndedData); ok && d.Result == component.ResultVictory {
			return EffectVictory, true
		}
	}
	return 0, false
}
