// internal/system/shield.go
package system

import (
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

const shieldFlash = 120 * time.Millisecond

// ShieldSystem наводит щиты и перехватывает долетевшие до них пули.
type ShieldSystem struct {
	world           *entity.World
	clock           *clock.Clock
	eventDispatcher *event.Dispatcher
	effects         *EffectSystem
}

func NewShieldSystem(world *entity.World, clk *clock.Clock, eventDispatcher *event.Dispatcher, effects *EffectSystem) *ShieldSystem {
	return &ShieldSystem{
		world:           world,
		clock:           clk,
		eventDispatcher: eventDispatcher,
		effects:         effects,
	}
}

// NewEnemyShield создаёт щит архетипа или nil.
func NewEnemyShield(owner types.EntityID, def *defs.EnemyDefinition, displayWidth float64) *component.Shield {
	if def.Shield == nil {
		return nil
	}
	return &component.Shield{
		Owner:     owner,
		Side:      component.SideEnemy,
		HP:        def.Shield.Health,
		MaxHP:     def.Shield.Health,
		Radius:    displayWidth * def.Shield.RadiusFactor,
		Thickness: def.Shield.Thickness,
		HalfArc:   geom.DegToRad(def.Shield.ArcDegrees) / 2,
	}
}

// AttachPlayerShield выдаёт игроку новый щит взамен текущего.
func (s *ShieldSystem) AttachPlayerShield() {
	p := &s.world.Player
	p.Shield = &component.Shield{
		Owner:     component.PlayerID,
		Side:      component.SidePlayer,
		HP:        config.PlayerShieldHP,
		MaxHP:     config.PlayerShieldHP,
		Radius:    p.Width,
		Thickness: config.PlayerShieldThickness,
		HalfArc:   geom.DegToRad(config.PlayerShieldArc) / 2,
		BaseAngle: config.PlayerShieldBaseAngle,
	}
	s.track(p.Shield)
}

// Track points enemy shields at the player and the player shield along the
// ship's nose.
func (s *ShieldSystem) Track() {
	target := s.world.Player.Pos
	s.world.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		if e.Shield == nil {
			return
		}
		e.Shield.Center = e.Pos
		e.Shield.Facing = target.Sub(e.Pos).Angle()
	})
	if s.world.Player.Shield != nil {
		s.track(s.world.Player.Shield)
	}
}

func (s *ShieldSystem) track(sh *component.Shield) {
	p := &s.world.Player
	sh.Center = p.Pos
	sh.Facing = geom.WrapAngle(p.Tilt + sh.BaseAngle)
}

// Intercept убирает пули, попавшие в дугу чужого щита. Вызывается до проверок
// корпуса, поэтому щит всегда принимает удар первым.
func (s *ShieldSystem) Intercept() {
	s.world.PlayerBullets.Each(func(bid types.EntityID, b *component.Bullet) {
		s.world.Enemies.Each(func(eid types.EntityID, e *component.Enemy) {
			if !s.world.PlayerBullets.Alive(bid) {
				return
			}
			if e.Shield != nil && e.Shield.Arc().Contains(b.Pos) {
				s.Block(eid, e, b.Pos)
				s.world.PlayerBullets.Release(bid)
			}
		})
	})
	ps := s.world.Player.Shield
	if ps == nil {
		return
	}
	s.world.EnemyBullets.Each(func(bid types.EntityID, b *component.Bullet) {
		if s.world.Player.Shield != nil && ps.Arc().Contains(b.Pos) {
			s.BlockPlayer(b.Pos, 1)
			s.world.EnemyBullets.Release(bid)
		}
	})
}

// Covers reports whether e's shield is facing pos closely enough to block it.
func (s *ShieldSystem) Covers(e *component.Enemy, pos geom.Vec2) bool {
	return e.Shield != nil && e.Shield.HP > 0 && e.Shield.Arc().Contains(pos)
}

// Block списывает одно очко щита врага e. Сломанный щит владелец теряет.
func (s *ShieldSystem) Block(id types.EntityID, e *component.Enemy, at geom.Vec2) {
	sh := e.Shield
	if sh == nil {
		return
	}
	now := s.clock.Now()
	broken := sh.Absorb(1)
	sh.HitUntil = now + shieldFlash
	s.effects.Explosion(at, config.BlueExplosion, config.ExplosionRadius/2)
	s.eventDispatcher.Emit(event.ShieldAbsorbed, event.ShieldData{Side: component.SideEnemy, Pos: at, HP: sh.HP})
	if broken {
		e.Shield = nil
		s.eventDispatcher.Emit(event.ShieldBroken, event.ShieldData{Side: component.SideEnemy, Pos: e.Pos})
	}
}

// BlockPlayer spends amount points of the player's shield.
func (s *ShieldSystem) BlockPlayer(at geom.Vec2, amount int) {
	p := &s.world.Player
	sh := p.Shield
	if sh == nil {
		return
	}
	broken := sh.Absorb(amount)
	sh.HitUntil = s.clock.Now() + shieldFlash
	s.effects.Explosion(at, config.BlueExplosion, config.ExplosionRadius/2)
	s.eventDispatcher.Emit(event.ShieldAbsorbed, event.ShieldData{Side: component.SidePlayer, Pos: at, HP: sh.HP})
	if broken {
		p.Shield = nil
		s.eventDispatcher.Emit(event.ShieldBroken, event.ShieldData{Side: component.SidePlayer, Pos: p.Pos})
	}
}
