// internal/component/shield.go
package component

import (
	"time"

	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

// Side says whose team an entity fights for.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Shield — фронтальный дуговой барьер. Им владеет носитель (Enemy.Shield или
// Player.Shield), а Owner лишь обратная ссылка для поиска.
type Shield struct {
	Owner     types.EntityID
	Side      Side
	HP        int
	MaxHP     int
	Radius    float64
	Thickness float64
	HalfArc   float64 // radians
	BaseAngle float64 // сдвиг к курсу носителя (только у игрока)
	Center    geom.Vec2
	Facing    float64
	HitUntil  time.Duration // вспышка после блока
}

// Arc returns the current hit geometry.
func (s *Shield) Arc() geom.Arc {
	return geom.Arc{
		Center:    s.Center,
		Facing:    s.Facing,
		HalfAngle: s.HalfArc,
		Radius:    s.Radius,
		Thickness: s.Thickness,
	}
}

// Absorb принимает n урона и сообщает, сломан ли щит.
func (s *Shield) Absorb(n int) bool {
	s.HP -= n
	if s.HP < 0 {
		s.HP = 0
	}
	return s.HP == 0
}
