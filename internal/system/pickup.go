// internal/system/pickup.go
package system

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/internal/utils"
	"go-star-shooter/pkg/geom"
)

const pickupSpin = 1.5 // радиан в секунду

// PickupSystem роняет бонусы с убитых врагов и применяет их при касании.
type PickupSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	collision       *CollisionSystem
	shields         *ShieldSystem
	run             *RunSystem
	defs            map[defs.PickupKind]defs.PickupDefinition
}

func NewPickupSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService,
	collision *CollisionSystem, shields *ShieldSystem, run *RunSystem) *PickupSystem {
	s := &PickupSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		collision:       collision,
		shields:         shields,
		run:             run,
		defs:            defs.Pickups(),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent бросает кубики по таблице дропа убитого архетипа.
func (s *PickupSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok || data.Def == nil {
		return
	}
	for _, drop := range data.Def.Drops {
		if s.rng.Chance(drop.Chance) {
			s.Spawn(drop.Kind, data.Pos)
		}
	}
}

// Spawn drops a pickup of kind at pos.
func (s *PickupSystem) Spawn(kind defs.PickupKind, pos geom.Vec2) bool {
	def, ok := s.defs[kind]
	if !ok {
		return false
	}
	_, p, ok := s.world.Pickups.Acquire()
	if !ok {
		return false
	}
	*p = component.Pickup{
		Kind:      kind,
		Pos:       pos,
		FallSpeed: def.FallSpeed,
		Radius:    def.Radius,
		Heal:      def.Heal,
	}
	return true
}

func (s *PickupSystem) Update(deltaTime float64) {
	s.world.Pickups.Each(func(_ types.EntityID, p *component.Pickup) {
		p.Pos.Y += p.FallSpeed * deltaTime
		p.Spin += pickupSpin * deltaTime
	})
}

// Collect применяет все бонусы, которых касается игрок.
func (s *PickupSystem) Collect() {
	if s.world.Run.GameOver {
		return
	}
	s.collision.PlayerOverlaps(GroupPickup, func(id types.EntityID) bool {
		p, ok := s.world.Pickups.Get(id)
		if !ok {
			return true
		}
		switch p.Kind {
		case defs.PickupGear:
			s.run.HealPlayer(p.Heal)
		case defs.PickupShield:
			s.shields.AttachPlayerShield()
		}
		data := event.PickupData{Kind: p.Kind, Pos: p.Pos}
		s.world.Pickups.Release(id)
		s.eventDispatcher.Emit(event.PickupCollected, data)
		return true
	})
}

// Cull освобождает бонусы, упавшие за нижний край.
func (s *PickupSystem) Cull() {
	limit := s.world.Height + config.PickupBottomCull
	s.world.Pickups.Each(func(id types.EntityID, p *component.Pickup) {
		if p.Pos.Y > limit {
			s.world.Pickups.Release(id)
		}
	})
}
