// internal/system/projectile.go
package system

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/types"
)

// ProjectileSystem управляет движением снарядов.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	move := func(_ types.EntityID, b *component.Bullet) {
		b.Pos = b.Pos.Add(b.Vel.Scale(deltaTime))
	}
	s.world.PlayerBullets.Each(move)
	s.world.EnemyBullets.Each(move)
}

// Cull releases bullets that left the play area.
func (s *ProjectileSystem) Cull() {
	w, h := s.world.Width, s.world.Height
	s.world.PlayerBullets.Each(func(id types.EntityID, b *component.Bullet) {
		if b.Pos.Y < config.PlayerBulletTopCull ||
			b.Pos.X < -config.BulletSideMargin || b.Pos.X > w+config.BulletSideMargin {
			s.world.PlayerBullets.Release(id)
		}
	})
	s.world.EnemyBullets.Each(func(id types.EntityID, b *component.Bullet) {
		if b.Pos.Y < config.EnemyBulletTopCull || b.Pos.Y > h+config.EnemyBulletBottomCull ||
			b.Pos.X < -config.BulletSideMargin || b.Pos.X > w+config.BulletSideMargin {
			s.world.EnemyBullets.Release(id)
		}
	})
}
