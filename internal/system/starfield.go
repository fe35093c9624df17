// internal/system/starfield.go
package system

import (
	"math"

	"go-star-shooter/internal/component"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/utils"
	"go-star-shooter/pkg/geom"
)

type starLayer struct {
	countFactor      float64
	speed            float64
	sizeMin, sizeMax float64
	alpha            float64
	blob             bool
}

var starLayers = []starLayer{
	{countFactor: 1.8, speed: 40, sizeMin: 1, sizeMax: 1.5, alpha: 0.35},
	{countFactor: 1, speed: 70, sizeMin: 1, sizeMax: 2, alpha: 0.45},
	{countFactor: 0.5, speed: 110, sizeMin: 1.5, sizeMax: 2.5, alpha: 0.6},
	{countFactor: 0.1, speed: 160, sizeMin: 2, sizeMax: 3, alpha: 0.8},
	{countFactor: 0.015, speed: 18, sizeMin: 100, sizeMax: 200, alpha: 0.04, blob: true},
}

const starFlickerFreq = 0.9

// StarfieldSystem прокручивает параллакс-фон.
type StarfieldSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewStarfieldSystem(world *entity.World, rng *utils.PRNGService) *StarfieldSystem {
	return &StarfieldSystem{world: world, rng: rng}
}

// Populate fills the field; star count scales with screen area.
func (s *StarfieldSystem) Populate() {
	w, h := s.world.Width, s.world.Height
	area := w * h / 10000
	field := &s.world.Stars
	field.Stars = field.Stars[:0]
	field.SpeedMul = 1
	for i, layer := range starLayers {
		count := int(math.Max(8, math.Floor(area*layer.countFactor)))
		if layer.blob {
			count = int(math.Max(1, math.Floor(area*layer.countFactor)))
		}
		for j := 0; j < count; j++ {
			field.Stars = append(field.Stars, component.Star{
				Pos:   s.randomPos(w, h),
				Layer: i,
				Speed: layer.speed,
				Size:  s.rng.FloatBetween(layer.sizeMin, layer.sizeMax),
				Alpha: layer.alpha,
				Phase: s.rng.FloatBetween(0, 2*math.Pi),
				Blob:  layer.blob,
			})
		}
	}
}

func (s *StarfieldSystem) randomPos(w, h float64) geom.Vec2 {
	return geom.V(s.rng.FloatBetween(0, w), s.rng.FloatBetween(0, h))
}

// Update двигает звёзды со скоростью слоя, умноженной на SpeedMul, и заворачивает их.
func (s *StarfieldSystem) Update(deltaTime float64) {
	field := &s.world.Stars
	field.Time += deltaTime
	for i := range field.Stars {
		st := &field.Stars[i]
		st.Pos.Y += st.Speed * field.SpeedMul * deltaTime
		if st.Pos.Y > s.world.Height {
			st.Pos.Y -= s.world.Height
			st.Pos.X = s.rng.FloatBetween(0, s.world.Width)
		}
	}
}

// Brightness returns the flickering alpha of st at the field's current time.
func Brightness(field *component.Starfield, st *component.Star) float64 {
	flicker := 0.8 + 0.2*math.Sin(field.Time*starFlickerFreq+st.Phase)
	return math.Min(1, math.Max(0, st.Alpha*flicker))
}
