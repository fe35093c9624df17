// internal/system/beam.go
package system

import (
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

// BeamSystem — красный луч и его урон с ограничением частоты.
type BeamSystem struct {
	world   *entity.World
	clock   *clock.Clock
	combat  *CombatSystem
	shields *ShieldSystem
}

func NewBeamSystem(world *entity.World, clk *clock.Clock, combat *CombatSystem, shields *ShieldSystem) *BeamSystem {
	return &BeamSystem{world: world, clock: clk, combat: combat, shields: shields}
}

// Hit is the result of a beam ray test.
type Hit struct {
	ID       types.EntityID
	Distance float64
}

// Nearest ищет ближайшего врага на луче. Враги дальше maxLen не учитываются,
// поэтому maxLen заранее обрезается по краю экрана.
func (s *BeamSystem) Nearest(origin, dir geom.Vec2, maxLen float64) (Hit, bool) {
	var best Hit
	found := false
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		d, ok := geom.RayCircleHit(origin, dir, e.Pos, e.Radius, maxLen)
		if !ok {
			return
		}
		if !found || d < best.Distance {
			best = Hit{ID: id, Distance: d}
			found = true
		}
	})
	return best, found
}

// Cast fires the beam for this frame from the player's muzzle along its
// heading. Only the nearest enemy is affected.
func (s *BeamSystem) Cast() {
	p := &s.world.Player
	slot := s.world.ActiveSlot()
	origin := p.Muzzle()
	angle := p.Heading()
	dir := geom.FromAngle(angle)
	maxLen := geom.DistanceToRectEdge(origin, dir, s.world.Width, s.world.Height, slot.Def.BeamLength)

	beam := &s.world.Beam
	*beam = component.Beam{Active: true, Origin: origin, Angle: angle, Length: maxLen}

	hit, ok := s.Nearest(origin, dir, maxLen)
	if !ok {
		return
	}
	beam.Length = hit.Distance
	beam.Target = hit.ID
	s.apply(hit, origin.Add(dir.Scale(hit.Distance)), slot.Def.Damage, slot.Def.BeamTick)
}

func (s *BeamSystem) apply(hit Hit, at geom.Vec2, damage int, tick time.Duration) {
	e, ok := s.world.Enemies.Get(hit.ID)
	if !ok {
		return
	}
	now := s.clock.Now()
	if e.BeamHitOnce && now-e.LastBeamHit < tick {
		return
	}
	e.BeamHitOnce = true
	e.LastBeamHit = now
	if s.shields.Covers(e, at) {
		s.shields.Block(hit.ID, e, at)
		return
	}
	s.combat.DamageEnemy(hit.ID, damage, event.KilledByBeam)
}

// Stop прячет луч.
func (s *BeamSystem) Stop() {
	s.world.Beam.Active = false
}
