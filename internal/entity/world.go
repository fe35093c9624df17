// internal/entity/world.go
package entity

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/types"
)

// World — все сущности забега. Системы работают с одним общим *World.
type World struct {
	Width, Height float64

	Player       component.Player
	Weapons      [defs.WeaponCount]component.WeaponSlot
	ActiveWeapon defs.WeaponKind
	Run          component.RunState
	Beam         component.Beam
	Stars        component.Starfield
	AmmoFlash    component.Flash

	Enemies       *Pool[component.Enemy]
	PlayerBullets *Pool[component.Bullet]
	EnemyBullets  *Pool[component.Bullet]
	Pickups       *Pool[component.Pickup]
	Effects       *Pool[component.Effect]
}

// NewWorld создаёт пустой мир заданного размера с пулами по умолчанию.
func NewWorld(width, height float64) *World {
	return &World{
		Width:         width,
		Height:        height,
		Enemies:       NewPool[component.Enemy](config.PoolEnemies),
		PlayerBullets: NewPool[component.Bullet](config.PoolPlayerBullets),
		EnemyBullets:  NewPool[component.Bullet](config.PoolEnemyBullets),
		Pickups:       NewPool[component.Pickup](config.PoolPickups),
		Effects:       NewPool[component.Effect](config.PoolEffects),
	}
}

// ActiveSlot возвращает оружие, которое сейчас в руках.
func (w *World) ActiveSlot() *component.WeaponSlot {
	return &w.Weapons[w.ActiveWeapon]
}

// ClearEntities releases every pooled entity. Handles held elsewhere go stale.
func (w *World) ClearEntities() {
	w.Enemies.Clear()
	w.PlayerBullets.Clear()
	w.EnemyBullets.Clear()
	w.Pickups.Clear()
	w.Effects.Clear()
	w.Beam = component.Beam{}
	w.AmmoFlash = component.Flash{}
}

// CountEnemies считает живых врагов вида k.
func (w *World) CountEnemies(k defs.EnemyKind) int {
	n := 0
	w.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		if e.Def.Kind == k {
			n++
		}
	})
	return n
}
