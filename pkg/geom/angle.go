// pkg/geom/angle.go
package geom

import "math"

// WrapAngle нормализует угол в диапазон [-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// AngleDiff возвращает кратчайшую разницу to - from в диапазоне [-π, π].
func AngleDiff(from, to float64) float64 {
	return WrapAngle(to - from)
}

// DegToRad переводит градусы в радианы.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// RotateTo поворачивает угол from к to не больше чем на step радиан.
func RotateTo(from, to, step float64) float64 {
	diff := AngleDiff(from, to)
	if math.Abs(diff) <= step {
		return to
	}
	if diff > 0 {
		return WrapAngle(from + step)
	}
	return WrapAngle(from - step)
}
