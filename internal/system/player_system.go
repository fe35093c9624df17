// internal/system/player_system.go
package system

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/utils"
	"go-star-shooter/pkg/geom"
)

// Controls is the directional input for one frame.
type Controls struct {
	Left, Right, Up, Down bool
}

// PlayerSystem отвечает за движение и наклон корабля игрока, а также за
// скорость звёздного фона.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Spawn places the ship on its base line, centred.
func (s *PlayerSystem) Spawn() {
	baseY := s.world.Height * config.PlayerBaseYFactor
	s.world.Player = component.Player{
		Pos:     geom.V(s.world.Width/2, baseY),
		BaseY:   baseY,
		Radius:  config.PlayerRadius,
		Width:   config.PlayerWidth,
		Visible: true,
	}
}

// Bounds returns the rectangle the ship centre may occupy.
func (s *PlayerSystem) Bounds() (minX, maxX, minY, maxY float64) {
	p := &s.world.Player
	half := p.Width / 2
	minX, maxX = half, s.world.Width-half
	minY = geom.Clamp(p.BaseY-config.PlayerYRange, half, s.world.Height-half)
	maxY = geom.Clamp(p.BaseY+config.PlayerYRange, half, s.world.Height-half)
	return minX, maxX, minY, maxY
}

func (s *PlayerSystem) Update(deltaTime float64, in Controls) {
	p := &s.world.Player
	if s.world.Run.GameOver {
		return
	}
	var vx, vy float64
	if in.Left {
		vx -= config.PlayerSpeed
	}
	if in.Right {
		vx += config.PlayerSpeed
	}
	if in.Up {
		vy -= config.PlayerSpeed
	}
	if in.Down {
		vy += config.PlayerSpeed
	}
	minX, maxX, minY, maxY := s.Bounds()
	p.Pos.X = geom.Clamp(p.Pos.X+vx*deltaTime, minX, maxX)
	p.Pos.Y = geom.Clamp(p.Pos.Y+vy*deltaTime, minY, maxY)

	target := 0.0
	if in.Left && !in.Right {
		target = -geom.DegToRad(config.PlayerMaxTilt)
	}
	if in.Right && !in.Left {
		target = geom.DegToRad(config.PlayerMaxTilt)
	}
	p.Tilt = utils.Approach(p.Tilt, target, config.PlayerTiltLerp)

	speed := 1.0
	if in.Up && !in.Down {
		speed = config.StarfieldFast
	}
	if in.Down && !in.Up {
		speed = config.StarfieldSlow
	}
	// На краях диапазона фон тоже ускоряется или замедляется.
	if p.Pos.Y <= minY+0.01 {
		speed = config.StarfieldFast
	}
	if p.Pos.Y >= maxY-0.01 {
		speed = config.StarfieldSlow
	}
	s.world.Stars.SpeedMul = utils.Approach(s.world.Stars.SpeedMul, speed, config.StarfieldLerp)
}
