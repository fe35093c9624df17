// internal/component/projectile.go
package component

import (
	"go-star-shooter/internal/defs"
	"go-star-shooter/pkg/geom"
)

// Bullet — летящий снаряд игрока или врага.
type Bullet struct {
	Side   Side
	Weapon defs.WeaponKind // player bullets only
	Pos    geom.Vec2
	Vel    geom.Vec2
	Angle  float64
	Damage int
	Radius float64
}
