// internal/system/collision.go
package system

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"

	"github.com/solarlune/resolv"
)

// Group — слой столкновений.
type Group int

const (
	GroupEnemy Group = iota
	GroupPlayerBullet
	GroupEnemyBullet
	GroupPickup
	groupCount
)

var groupTags = [groupCount]resolv.Tags{
	GroupEnemy:        resolv.NewTag("enemy"),
	GroupPlayerBullet: resolv.NewTag("playerBullet"),
	GroupEnemyBullet:  resolv.NewTag("enemyBullet"),
	GroupPickup:       resolv.NewTag("pickup"),
}

var playerTag = resolv.NewTag("player")

// spaceMargin — запас сетки за краями экрана: сверху появляются враги,
// снизу уходят бонусы.
const spaceMargin = 160.0

// CollisionSystem mirrors pooled entities into a resolv space for broad-phase
// overlap tests. Sync must run after movement and before any query.
type CollisionSystem struct {
	world  *entity.World
	space  *resolv.Space
	player *resolv.Circle
	shapes [groupCount]map[types.EntityID]*resolv.Circle
	owners map[resolv.IShape]types.EntityID
}

func NewCollisionSystem(world *entity.World) *CollisionSystem {
	w := int(world.Width + 2*spaceMargin)
	h := int(world.Height + 2*spaceMargin)
	s := &CollisionSystem{
		world:  world,
		space:  resolv.NewSpace(w, h, config.CollisionCellSize, config.CollisionCellSize),
		owners: make(map[resolv.IShape]types.EntityID),
	}
	for g := range s.shapes {
		s.shapes[g] = make(map[types.EntityID]*resolv.Circle)
	}
	s.player = resolv.NewCircle(0, 0, world.Player.Radius)
	s.player.Tags().Set(playerTag)
	s.space.Add(s.player)
	return s
}

// Reset убирает все фигуры, кроме игрока.
func (s *CollisionSystem) Reset() {
	for g := range s.shapes {
		for id, sh := range s.shapes[g] {
			s.space.Remove(sh)
			delete(s.owners, sh)
			delete(s.shapes[g], id)
		}
	}
}

// Sync добавляет фигуры новым сущностям, двигает старые и удаляет фигуры
// исчезнувших.
func (s *CollisionSystem) Sync() {
	s.place(s.player, s.world.Player.Pos)

	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		s.track(GroupEnemy, id, e.Pos, e.Radius)
	})
	s.world.PlayerBullets.Each(func(id types.EntityID, b *component.Bullet) {
		s.track(GroupPlayerBullet, id, b.Pos, b.Radius)
	})
	s.world.EnemyBullets.Each(func(id types.EntityID, b *component.Bullet) {
		s.track(GroupEnemyBullet, id, b.Pos, b.Radius)
	})
	s.world.Pickups.Each(func(id types.EntityID, p *component.Pickup) {
		s.track(GroupPickup, id, p.Pos, p.Radius)
	})

	s.prune(GroupEnemy, s.world.Enemies.Alive)
	s.prune(GroupPlayerBullet, s.world.PlayerBullets.Alive)
	s.prune(GroupEnemyBullet, s.world.EnemyBullets.Alive)
	s.prune(GroupPickup, s.world.Pickups.Alive)
}

func (s *CollisionSystem) track(g Group, id types.EntityID, pos geom.Vec2, radius float64) {
	sh, ok := s.shapes[g][id]
	if !ok {
		sh = resolv.NewCircle(0, 0, radius)
		sh.Tags().Set(groupTags[g])
		s.space.Add(sh)
		s.shapes[g][id] = sh
		s.owners[sh] = id
	}
	s.place(sh, pos)
}

func (s *CollisionSystem) prune(g Group, alive func(types.EntityID) bool) {
	for id, sh := range s.shapes[g] {
		if alive(id) {
			continue
		}
		s.space.Remove(sh)
		delete(s.owners, sh)
		delete(s.shapes[g], id)
	}
}

func (s *CollisionSystem) place(sh *resolv.Circle, pos geom.Vec2) {
	sh.SetPosition(pos.X+spaceMargin, pos.Y+spaceMargin)
}

// Overlaps calls fn for each shape of group target that overlaps entity id of
// group g. fn returns false to stop early.
func (s *CollisionSystem) Overlaps(g Group, id types.EntityID, target Group, fn func(other types.EntityID) bool) {
	sh, ok := s.shapes[g][id]
	if !ok {
		return
	}
	s.test(sh, target, func(other types.EntityID) bool {
		if g == target && other == id {
			return true
		}
		return fn(other)
	})
}

// PlayerOverlaps вызывает fn для каждой фигуры группы target, касающейся игрока.
func (s *CollisionSystem) PlayerOverlaps(target Group, fn func(other types.EntityID) bool) {
	s.test(s.player, target, fn)
}

// test берёт кандидатов из ячеек сетки resolv, а попадание решает само:
// круги касаются, если расстояние между центрами не больше суммы радиусов.
// Так маленький круг целиком внутри большого тоже считается попаданием.
func (s *CollisionSystem) test(sh *resolv.Circle, target Group, fn func(types.EntityID) bool) {
	candidates := sh.SelectTouchingCells(0).FilterShapes().ByTags(groupTags[target]).Shapes()
	for _, other := range candidates {
		oc, ok := other.(*resolv.Circle)
		if !ok || !circlesTouch(sh, oc) {
			continue
		}
		id, ok := s.owners[other]
		if !ok {
			continue
		}
		if !fn(id) {
			return
		}
	}
}

func circlesTouch(a, b *resolv.Circle) bool {
	r := a.Radius() + b.Radius()
	return a.DistanceSquaredTo(b) <= r*r
}

// ShapeCount returns the number of tracked shapes in group g.
func (s *CollisionSystem) ShapeCount(g Group) int {
	return len(s.shapes[g])
}
