// internal/component/weapon.go
package component

import (
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/defs"
)

// WeaponSlot — полное состояние одного оружия. Таймеры у слотов свои,
// поэтому смена оружия оставляет неактивный слот как был.
type WeaponSlot struct {
	Def          *defs.WeaponDefinition
	Ammo         int
	Reloading    bool
	ReloadEndsAt time.Duration
	ReloadTimer  clock.TimerID
	FiringUntil  time.Duration // конец заряда луча, 0 если луч не горит
	NextShotAt   time.Duration
}

func (w *WeaponSlot) Kind() defs.WeaponKind { return w.Def.Kind }

// Full reports whether the magazine is at capacity.
func (w *WeaponSlot) Full() bool {
	return w.Ammo >= w.Def.AmmoMax
}

// ReloadRemaining — сколько осталось до конца перезарядки.
func (w *WeaponSlot) ReloadRemaining(now time.Duration) time.Duration {
	if !w.Reloading || w.ReloadEndsAt <= now {
		return 0
	}
	return w.ReloadEndsAt - now
}

// BeamRemaining returns how long the beam charge still lasts.
func (w *WeaponSlot) BeamRemaining(now time.Duration) time.Duration {
	if w.FiringUntil == 0 || w.FiringUntil <= now {
		return 0
	}
	return w.FiringUntil - now
}
