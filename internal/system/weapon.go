// internal/system/weapon.go
package system

import (
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/pkg/geom"
)

// FireResult — итог нажатия на спуск.
type FireResult int

const (
	FireNone FireResult = iota
	FireShot
	FireBeam
	FireReloadStarted
)

// WeaponSystem — машина состояний стрельбы и перезарядки для каждого слота.
type WeaponSystem struct {
	world           *entity.World
	clock           *clock.Clock
	scheduler       *clock.Scheduler
	eventDispatcher *event.Dispatcher
	defs            [defs.WeaponCount]defs.WeaponDefinition
}

func NewWeaponSystem(world *entity.World, clk *clock.Clock, scheduler *clock.Scheduler,
	eventDispatcher *event.Dispatcher, weapons [defs.WeaponCount]defs.WeaponDefinition) *WeaponSystem {
	s := &WeaponSystem{
		world:           world,
		clock:           clk,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		defs:            weapons,
	}
	s.Reset()
	return s
}

// Reset отменяет перезарядки и заполняет все слоты. Активным становится синий.
func (s *WeaponSystem) Reset() {
	s.CancelAll()
	for k := range s.world.Weapons {
		s.world.Weapons[k] = component.WeaponSlot{
			Def:  &s.defs[k],
			Ammo: s.defs[k].AmmoMax,
		}
	}
	s.world.ActiveWeapon = defs.WeaponBlue
	s.world.Beam.Active = false
}

// CancelAll останавливает перезарядки и заряд луча, не пополняя патроны.
func (s *WeaponSystem) CancelAll() {
	for k := range s.world.Weapons {
		slot := &s.world.Weapons[k]
		if slot.ReloadTimer != 0 {
			s.scheduler.Cancel(slot.ReloadTimer)
		}
		slot.ReloadTimer = 0
		slot.Reloading = false
		slot.FiringUntil = 0
	}
	s.world.Beam.Active = false
}

// Fire — выстрел из активного оружия.
func (s *WeaponSystem) Fire() FireResult {
	if s.world.Run.GameOver {
		return FireNone
	}
	now := s.clock.Now()
	slot := s.world.ActiveSlot()
	if slot.Reloading || now < slot.NextShotAt {
		return FireNone
	}
	switch slot.Def.Mode {
	case defs.FireBeam:
		return s.fireBeam(slot, now)
	default:
		return s.fireProjectile(slot, now)
	}
}

func (s *WeaponSystem) fireProjectile(slot *component.WeaponSlot, now time.Duration) FireResult {
	if slot.Ammo <= 0 {
		s.BeginReload(slot.Kind())
		return FireReloadStarted
	}
	if !s.spawnBullet(slot) {
		return FireNone
	}
	slot.Ammo--
	slot.NextShotAt = now + slot.Def.FireDelay
	s.eventDispatcher.Emit(event.WeaponFired, event.WeaponData{Weapon: slot.Kind()})
	if slot.Ammo == 0 {
		s.BeginReload(slot.Kind())
	}
	return FireShot
}

// fireBeam тратит единственный заряд и открывает окно стрельбы. Пока окно
// открыто, каждое нажатие держит луч включённым.
func (s *WeaponSystem) fireBeam(slot *component.WeaponSlot, now time.Duration) FireResult {
	if slot.FiringUntil != 0 {
		if now > slot.FiringUntil {
			s.BeginReload(slot.Kind())
			return FireReloadStarted
		}
		return FireBeam
	}
	if slot.Ammo <= 0 {
		s.BeginReload(slot.Kind())
		return FireReloadStarted
	}
	slot.Ammo--
	slot.FiringUntil = now + slot.Def.FireWindow
	s.eventDispatcher.Emit(event.WeaponFired, event.WeaponData{Weapon: slot.Kind()})
	return FireBeam
}

func (s *WeaponSystem) spawnBullet(slot *component.WeaponSlot) bool {
	_, b, ok := s.world.PlayerBullets.Acquire()
	if !ok {
		return false
	}
	p := &s.world.Player
	heading := p.Heading()
	*b = component.Bullet{
		Side:   component.SidePlayer,
		Weapon: slot.Kind(),
		Pos:    p.Muzzle(),
		Vel:    geom.FromAngle(heading).Scale(slot.Def.BulletSpeed),
		Angle:  heading,
		Damage: slot.Def.Damage,
		Radius: config.PlayerBulletRadius,
	}
	return true
}

// Reload is the manual reload of the active weapon.
func (s *WeaponSystem) Reload() bool {
	if s.world.Run.GameOver {
		return false
	}
	return s.BeginReload(s.world.ActiveWeapon)
}

// BeginReload запускает перезарядку слота kind. Если слот уже перезаряжается,
// ничего не происходит: срок завершения не переносится.
func (s *WeaponSystem) BeginReload(kind defs.WeaponKind) bool {
	slot := &s.world.Weapons[kind]
	if slot.Reloading {
		return false
	}
	full := slot.Full() && slot.FiringUntil == 0
	slot.Reloading = true
	slot.FiringUntil = 0
	slot.ReloadEndsAt = s.clock.Now() + slot.Def.ReloadDuration
	slot.ReloadTimer = s.scheduler.After(slot.Def.ReloadDuration, func() {
		s.finishReload(kind, full)
	})
	if kind == s.world.ActiveWeapon {
		s.world.Beam.Active = false
	}
	s.eventDispatcher.Emit(event.ReloadStarted, event.WeaponData{Weapon: kind})
	return true
}

func (s *WeaponSystem) finishReload(kind defs.WeaponKind, full bool) {
	slot := &s.world.Weapons[kind]
	slot.Reloading = false
	slot.ReloadTimer = 0
	slot.Ammo = slot.Def.AmmoMax
	s.eventDispatcher.Emit(event.ReloadFinished, event.ReloadFinishedData{
		Weapon: kind,
		Active: kind == s.world.ActiveWeapon,
		Full:   full,
	})
}

// Switch делает kind активным оружием. У прежнего слота патроны, срок
// перезарядки и заряд луча не меняются.
func (s *WeaponSystem) Switch(kind defs.WeaponKind) bool {
	if kind < 0 || kind >= defs.WeaponCount || kind == s.world.ActiveWeapon || s.world.Run.GameOver {
		return false
	}
	s.world.ActiveWeapon = kind
	s.world.Beam.Active = false
	s.eventDispatcher.Emit(event.WeaponSwitched, event.WeaponData{Weapon: kind})
	return true
}

// Update отправляет на перезарядку слоты, у которых закончился заряд луча.
func (s *WeaponSystem) Update() {
	now := s.clock.Now()
	for k := range s.world.Weapons {
		slot := &s.world.Weapons[k]
		if slot.FiringUntil != 0 && now > slot.FiringUntil && !slot.Reloading {
			s.BeginReload(defs.WeaponKind(k))
		}
	}
}
