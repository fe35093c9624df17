// pkg/geom/arc.go
package geom

import "math"

// ArcHitSlack widens the arc band radially so fast bullets that are already
// slightly inside the ring are still caught.
const ArcHitSlack = 1.5

// Arc — угловой сектор кольца вокруг Center с серединой на Facing.
type Arc struct {
	Center    Vec2
	Facing    float64 // radians
	HalfAngle float64 // radians
	Radius    float64
	Thickness float64
}

// Reach — самое дальнее расстояние от Center, которое ещё считается попаданием.
func (a Arc) Reach() float64 {
	return a.Radius + a.Thickness*ArcHitSlack
}

// Contains reports whether p lies within Reach of Center and its bearing is
// within HalfAngle of Facing.
func (a Arc) Contains(p Vec2) bool {
	d := p.Sub(a.Center)
	if d.Len() > a.Reach() {
		return false
	}
	return math.Abs(AngleDiff(a.Facing, d.Angle())) <= a.HalfAngle
}
