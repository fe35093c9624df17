// internal/component/beam.go
package component

import (
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

// Beam — красный луч текущего кадра, хранится для отрисовки.
type Beam struct {
	Active bool
	Origin geom.Vec2
	Angle  float64
	Length float64
	Target types.EntityID // ноль, если никого не задел
}

// End returns the far end of the beam.
func (b *Beam) End() geom.Vec2 {
	return b.Origin.Add(geom.FromAngle(b.Angle).Scale(b.Length))
}
