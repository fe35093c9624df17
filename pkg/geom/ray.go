// pkg/geom/ray.go
package geom

import "math"

// RayCircleHit tests a ray of length maxLen from origin along unit dir against
// a circle. It returns the distance to the near surface of the circle.
// Circles behind the origin or farther than maxLen along the ray are missed.
func RayCircleHit(origin, dir, center Vec2, radius, maxLen float64) (float64, bool) {
	to := center.Sub(origin)
	proj := Clamp(to.Dot(dir), 0, maxLen)
	if proj <= 0 {
		return 0, false
	}
	closest := origin.Add(dir.Scale(proj))
	perp2 := center.Sub(closest).Len2()
	r2 := radius * radius
	if perp2 > r2 {
		return 0, false
	}
	hit := proj - math.Sqrt(r2-perp2)
	if hit < 0 {
		hit = 0
	}
	return hit, true
}

// DistanceToRectEdge returns how far a ray from origin along unit dir travels
// before leaving the rectangle [0,w]x[0,h], capped at maxLen.
func DistanceToRectEdge(origin, dir Vec2, w, h, maxLen float64) float64 {
	dist := maxLen
	if dir.X > 0 {
		dist = math.Min(dist, (w-origin.X)/dir.X)
	} else if dir.X < 0 {
		dist = math.Min(dist, -origin.X/dir.X)
	}
	if dir.Y > 0 {
		dist = math.Min(dist, (h-origin.Y)/dir.Y)
	} else if dir.Y < 0 {
		dist = math.Min(dist, -origin.Y/dir.Y)
	}
	if dist < 0 {
		return 0
	}
	return dist
}
