// internal/system/visual_effect.go
package system

import (
	"fmt"
	"image/color"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

// EffectSystem управляет визуальными эффектами: взрывы, числа урона и
// сообщение о перезарядке.
type EffectSystem struct {
	world *entity.World
	clock *clock.Clock
}

func NewEffectSystem(world *entity.World, clk *clock.Clock, eventDispatcher *event.Dispatcher) *EffectSystem {
	s := &EffectSystem{world: world, clock: clk}
	eventDispatcher.Subscribe(event.ReloadFinished, s)
	return s
}

// OnEvent shows the ammo message when the weapon in hand finishes reloading.
func (s *EffectSystem) OnEvent(e event.Event) {
	if e.Type != event.ReloadFinished {
		return
	}
	data, ok := e.Data.(event.ReloadFinishedData)
	if !ok || !data.Active {
		return
	}
	text := "ammo loaded"
	if data.Full {
		text = "ammo full"
	}
	s.world.AmmoFlash = component.Flash{Text: text, Until: s.clock.Now() + config.AmmoFlashDuration}
}

// Explosion spawns an expanding ring. Silently dropped when the pool is full.
func (s *EffectSystem) Explosion(pos geom.Vec2, clr color.RGBA, radius float64) {
	_, fx, ok := s.world.Effects.Acquire()
	if !ok {
		return
	}
	*fx = component.Effect{
		Kind:      component.EffectExplosion,
		Pos:       pos,
		Color:     clr,
		MaxRadius: radius,
		StartedAt: s.clock.Now(),
		Duration:  config.ExplosionDuration,
	}
}

// DamageNumber spawns a rising damage label.
func (s *EffectSystem) DamageNumber(pos geom.Vec2, amount int) {
	_, fx, ok := s.world.Effects.Acquire()
	if !ok {
		return
	}
	*fx = component.Effect{
		Kind:      component.EffectDamageNumber,
		Pos:       pos,
		Color:     config.DamageTextColor,
		Text:      fmt.Sprintf("-%d", amount),
		StartedAt: s.clock.Now(),
		Duration:  config.DamageNumberDuration,
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *EffectSystem) Update(deltaTime float64) {
	now := s.clock.Now()
	s.world.Effects.Each(func(id types.EntityID, fx *component.Effect) {
		if now-fx.StartedAt >= fx.Duration {
			s.world.Effects.Release(id)
			return
		}
		if fx.Kind == component.EffectDamageNumber {
			fx.Pos.Y -= config.DamageNumberRise * deltaTime
		}
	})
	if s.world.AmmoFlash.Text != "" && now >= s.world.AmmoFlash.Until {
		s.world.AmmoFlash = component.Flash{}
	}
}
