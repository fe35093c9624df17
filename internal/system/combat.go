// internal/system/combat.go
package system

import (
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

const enemyFlash = 100 * time.Millisecond

// CombatSystem превращает пересечения в урон. Все убийства проходят через него.
type CombatSystem struct {
	world           *entity.World
	clock           *clock.Clock
	eventDispatcher *event.Dispatcher
	collision       *CollisionSystem
	shields         *ShieldSystem
	effects         *EffectSystem
	run             *RunSystem
}

func NewCombatSystem(world *entity.World, clk *clock.Clock, eventDispatcher *event.Dispatcher,
	collision *CollisionSystem, shields *ShieldSystem, effects *EffectSystem, run *RunSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		clock:           clk,
		eventDispatcher: eventDispatcher,
		collision:       collision,
		shields:         shields,
		effects:         effects,
		run:             run,
	}
}

// Update выполняет все проверки пересечений за кадр.
func (s *CombatSystem) Update() {
	s.ResolvePlayerBullets()
	s.ResolveEnemyBullets()
	s.ResolveContacts()
	s.ResolveEnemyOverlaps()
}

// ResolvePlayerBullets — пули игрока против первого задетого врага.
// Повёрнутый к пуле щит поглощает её, корпус не страдает.
func (s *CombatSystem) ResolvePlayerBullets() {
	s.world.PlayerBullets.Each(func(bid types.EntityID, b *component.Bullet) {
		s.collision.Overlaps(GroupPlayerBullet, bid, GroupEnemy, func(eid types.EntityID) bool {
			e, ok := s.world.Enemies.Get(eid)
			if !ok {
				return true
			}
			if s.shields.Covers(e, b.Pos) {
				s.shields.Block(eid, e, b.Pos)
			} else {
				s.effects.Explosion(b.Pos, config.ExplosionColor, config.ExplosionRadius/2)
				s.DamageEnemy(eid, b.Damage, event.KilledByBullet)
			}
			s.world.PlayerBullets.Release(bid)
			return false
		})
	})
}

// ResolveEnemyBullets applies enemy bullets that reach the player's hull.
func (s *CombatSystem) ResolveEnemyBullets() {
	if s.world.Run.GameOver {
		return
	}
	s.collision.PlayerOverlaps(GroupEnemyBullet, func(bid types.EntityID) bool {
		b, ok := s.world.EnemyBullets.Get(bid)
		if !ok {
			return true
		}
		if ps := s.world.Player.Shield; ps != nil && ps.Arc().Contains(b.Pos) {
			s.shields.BlockPlayer(b.Pos, 1)
		} else {
			s.effects.Explosion(b.Pos, config.ExplosionColor, config.ExplosionRadius/2)
			s.run.DamagePlayer(b.Damage)
		}
		s.world.EnemyBullets.Release(bid)
		return !s.world.Run.GameOver
	})
}

// ResolveContacts обрабатывает столкновения кораблей. После контакта игрок
// неуязвим к таранам PlayerContactWait, враг — EnemyContactWait.
func (s *CombatSystem) ResolveContacts() {
	now := s.clock.Now()
	p := &s.world.Player
	if s.world.Run.GameOver || now < p.ContactUntil {
		return
	}
	s.collision.PlayerOverlaps(GroupEnemy, func(eid types.EntityID) bool {
		e, ok := s.world.Enemies.Get(eid)
		if !ok || now < e.ContactUntil {
			return true
		}
		p.ContactUntil = now + config.PlayerContactWait
		e.ContactUntil = now + config.EnemyContactWait
		s.effects.Explosion(p.Pos, config.ExplosionColor, config.ExplosionRadius)

		if e.Def.Kamikaze {
			s.run.DamagePlayer(s.world.Run.PlayerHP)
			s.KillEnemy(eid, event.KilledByContact)
			return false
		}
		damage := e.Def.ContactDamage
		if p.Shield != nil {
			s.shields.BlockPlayer(p.Pos, damage)
		} else {
			s.run.DamagePlayer(damage)
		}
		s.DamageEnemy(eid, 1, event.KilledByContact)
		return false
	})
}

// ResolveEnemyOverlaps расталкивает наложившихся врагов по горизонтали.
func (s *CombatSystem) ResolveEnemyOverlaps() {
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		s.collision.Overlaps(GroupEnemy, id, GroupEnemy, func(oid types.EntityID) bool {
			o, ok := s.world.Enemies.Get(oid)
			if !ok {
				return true
			}
			dir := 1.0
			if e.Pos.X < o.Pos.X || (e.Pos.X == o.Pos.X && id.Index < oid.Index) {
				dir = -1
			}
			e.Vel.X += dir * config.EnemyPushVelocity
			e.Pos.X += dir * config.EnemyPushDistance
			return true
		})
	})
}

// DamageEnemy hits an enemy hull. It reports whether the enemy died.
func (s *CombatSystem) DamageEnemy(id types.EntityID, amount int, cause event.KillCause) bool {
	e, ok := s.world.Enemies.Get(id)
	if !ok {
		return false
	}
	e.FlashUntil = s.clock.Now() + enemyFlash
	s.effects.DamageNumber(geom.V(e.Pos.X, e.Pos.Y-e.DisplayWidth*0.3), amount)
	if e.TakeDamage(amount) {
		s.KillEnemy(id, cause)
		return true
	}
	return false
}

// KillEnemy удаляет врага вместе со щитом и сообщает об убийстве.
// Любое убийство, чем бы оно ни было вызвано, идёт через эту функцию.
func (s *CombatSystem) KillEnemy(id types.EntityID, cause event.KillCause) {
	e, ok := s.world.Enemies.Get(id)
	if !ok {
		return
	}
	data := event.EnemyKilledData{ID: id, Def: e.Def, Pos: e.Pos, Cause: cause}
	s.world.Enemies.Release(id)
	s.effects.Explosion(data.Pos, config.ExplosionColor, config.ExplosionRadius*data.Def.Scale)
	s.eventDispatcher.Emit(event.EnemyKilled, data)
}
