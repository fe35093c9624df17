// internal/component/starfield.go
package component

import "go-star-shooter/pkg/geom"

// Star is one background particle.
type Star struct {
	Pos   geom.Vec2
	Layer int
	Speed float64
	Size  float64
	Alpha float64
	Phase float64
	Blob  bool
}

// Starfield — параллакс-фон. SpeedMul следует за движением игрока.
type Starfield struct {
	Stars    []Star
	SpeedMul float64
	Time     float64
}
