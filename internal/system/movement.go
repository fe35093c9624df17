// internal/system/movement.go
package system

import (
	"math"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/internal/utils"
	"go-star-shooter/pkg/geom"
)

// pushDamping is the per-second decay of sideways push velocity.
const pushDamping = 4.0

// EnemySystem двигает врагов по их шаблону и стреляет из их пушек.
type EnemySystem struct {
	world           *entity.World
	clock           *clock.Clock
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewEnemySystem(world *entity.World, clk *clock.Clock, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *EnemySystem {
	return &EnemySystem{
		world:           world,
		clock:           clk,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

func (s *EnemySystem) Update(deltaTime float64) {
	now := s.clock.Now()
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		s.move(e, deltaTime)
		if e.Def.Gun != nil && !s.world.Run.GameOver && now >= e.NextShotAt && e.Pos.Y > 0 {
			s.shoot(e)
		}
	})
}

func (s *EnemySystem) move(e *component.Enemy, deltaTime float64) {
	half := e.DisplayWidth / 2
	minX := half + config.EnemyEdgePadding
	maxX := s.world.Width - half - config.EnemyEdgePadding
	if minX > maxX {
		minX, maxX = s.world.Width/2, s.world.Width/2
	}

	e.Pos.Y += e.Vel.Y * deltaTime
	if e.Weave != nil {
		t := float64((s.clock.Now() - e.SpawnedAt).Milliseconds())
		prevX := e.Pos.X
		e.Weave.BaseX += e.Vel.X * deltaTime
		e.Pos.X = geom.Clamp(e.Weave.BaseX+math.Sin(t*e.Weave.Freq+e.Weave.Offset)*e.Weave.Amp, minX, maxX)
		heading := geom.V(e.Pos.X-prevX, e.Vel.Y*deltaTime).Angle()
		e.Rotation = geom.RotateTo(e.Rotation, heading, config.EnemyTurnRate*4)
	} else {
		e.Pos.X = geom.Clamp(e.Pos.X+e.Vel.X*deltaTime, minX, maxX)
	}
	e.Vel.X *= math.Max(0, 1-pushDamping*deltaTime)
	if e.Shield != nil {
		e.Shield.Center = e.Pos
	}
}

func (s *EnemySystem) shoot(e *component.Enemy) {
	gun := e.Def.Gun
	e.NextShotAt = s.clock.Now() + s.rng.DurationBetween(gun.IntervalMinMs, gun.IntervalMaxMs)
	_, b, ok := s.world.EnemyBullets.Acquire()
	if !ok {
		return
	}
	aim := s.world.Player.Pos.Sub(e.Pos).Angle()
	*b = component.Bullet{
		Side:   component.SideEnemy,
		Pos:    e.Pos,
		Vel:    geom.FromAngle(aim).Scale(gun.BulletSpeed),
		Angle:  aim,
		Damage: gun.Damage,
		Radius: config.EnemyBulletRadius,
	}
	s.eventDispatcher.Emit(event.EnemyFired, nil)
}

// Cull убирает врагов, ушедших за нижний край. Убийством это не считается.
func (s *EnemySystem) Cull() {
	limit := s.world.Height + config.EnemyBottomCull
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if e.Pos.Y > limit {
			kind := e.Def.Kind
			s.world.Enemies.Release(id)
			s.eventDispatcher.Emit(event.EnemyEscaped, event.EnemyEscapedData{ID: id, Kind: kind})
		}
	})
}
