// internal/component/player.go
package component

import (
	"math"
	"time"

	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

// PlayerID is the fixed handle of the single player ship.
var PlayerID = types.EntityID{Index: math.MaxUint32, Gen: 1}

// Player — корабль игрока. Tilt в радианах, при 0 нос смотрит вверх.
type Player struct {
	Pos          geom.Vec2
	BaseY        float64
	Tilt         float64
	Radius       float64
	Width        float64
	Shield       *Shield
	ContactUntil time.Duration
	FlashUntil   time.Duration
	Visible      bool
}

// Heading is the direction the nose points, as a screen-space bearing.
func (p *Player) Heading() float64 {
	return geom.WrapAngle(p.Tilt - math.Pi/2)
}

// Muzzle — точка, откуда вылетают пули и луч.
func (p *Player) Muzzle() geom.Vec2 {
	return p.Pos.Add(geom.FromAngle(p.Heading()).Scale(p.Radius))
}
