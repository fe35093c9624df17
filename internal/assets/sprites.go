// internal/assets/sprites.go
package assets

import (
	"image/color"
	"math"

	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// spriteSize is the texture edge; sprites are scaled to their display width.
const spriteSize = 128

// Sprites — процедурно нарисованные текстуры. Корабли смотрят вдоль +X,
// чтобы рендерер поворачивал их по курсу.
type Sprites struct {
	Player  *ebiten.Image
	Enemies map[defs.EnemyKind]*ebiten.Image
	Gear    *ebiten.Image
	Shield  *ebiten.Image
	Glow    *ebiten.Image
}

// NewSprites рисует все текстуры один раз.
func NewSprites(shapes *render.Shapes) *Sprites {
	s := &Sprites{
		Player:  ebiten.NewImage(spriteSize, spriteSize),
		Enemies: make(map[defs.EnemyKind]*ebiten.Image),
		Gear:    ebiten.NewImage(64, 64),
		Shield:  ebiten.NewImage(64, 64),
		Glow:    ebiten.NewImage(64, 64),
	}
	drawPlayer(shapes, s.Player)
	for i, kind := range []defs.EnemyKind{defs.EnemyGunship, defs.EnemyWeaver, defs.EnemyDreadnought} {
		img := ebiten.NewImage(spriteSize, spriteSize)
		drawEnemy(shapes, img, kind, config.EnemyColors[i])
		s.Enemies[kind] = img
	}
	drawGear(shapes, s.Gear)
	drawShieldPickup(shapes, s.Shield)
	drawGlow(shapes, s.Glow)
	return s
}

// Enemy возвращает текстуру для kind, по умолчанию текстуру канонерки.
func (s *Sprites) Enemy(kind defs.EnemyKind) *ebiten.Image {
	if img, ok := s.Enemies[kind]; ok {
		return img
	}
	return s.Enemies[defs.EnemyGunship]
}

// points scales unit coordinates (-1..1) to the sprite square.
func points(unit ...float32) []float32 {
	half := float32(spriteSize) / 2
	out := make([]float32, len(unit))
	for i, v := range unit {
		out[i] = half + v*half*0.9
	}
	return out
}

func drawPlayer(sh *render.Shapes, img *ebiten.Image) {
	hull := config.PlayerColor
	sh.Polygon(img, points(1, 0, -0.4, 0.85, -0.15, 0, -0.4, -0.85), hull)
	sh.Polygon(img, points(-0.2, 0.3, -0.9, 0.55, -0.7, 0, -0.9, -0.55, -0.2, -0.3), render.DarkenColor(hull, 0.7))
	sh.Polygon(img, points(0.55, 0, 0.1, 0.15, 0.1, -0.15), config.BlueWeaponColor)
	sh.Disc(img, spriteSize*0.12, spriteSize/2, spriteSize*0.06, config.ReloadColor)
}

func drawEnemy(sh *render.Shapes, img *ebiten.Image, kind defs.EnemyKind, clr color.RGBA) {
	dark := render.DarkenColor(clr, 0.6)
	switch kind {
	case defs.EnemyWeaver:
		sh.Polygon(img, points(1, 0, -0.2, 0.9, -0.6, 0, -0.2, -0.9), clr)
		sh.Polygon(img, points(0.3, 0, -0.3, 0.3, -0.3, -0.3), dark)
	case defs.EnemyDreadnought:
		sh.Polygon(img, points(0.9, 0.3, 0.9, -0.3, 0.3, -0.9, -0.8, -0.7, -0.8, 0.7, 0.3, 0.9), clr)
		sh.Polygon(img, points(0.6, 0.15, 0.6, -0.15, -0.5, -0.4, -0.5, 0.4), dark)
		for _, y := range []float32{-0.55, 0.55} {
			pts := points(-0.9, y-0.12, -0.5, y-0.12, -0.5, y+0.12, -0.9, y+0.12)
			sh.Polygon(img, pts, config.ReloadColor)
		}
	default:
		sh.Polygon(img, points(1, 0, 0, 0.7, -0.8, 0.5, -0.5, 0, -0.8, -0.5, 0, -0.7), clr)
		sh.Polygon(img, points(0.7, 0.08, 0.7, -0.08, 0.1, -0.12, 0.1, 0.12), dark)
	}
}

func drawGear(sh *render.Shapes, img *ebiten.Image) {
	const teeth = 8
	c := float64(img.Bounds().Dx()) / 2
	pts := make([]float32, 0, teeth*4*2)
	for i := 0; i < teeth*2; i++ {
		r := c * 0.9
		if i%2 == 1 {
			r = c * 0.65
		}
		a0 := float64(i) * math.Pi / teeth
		a1 := a0 + math.Pi/teeth
		pts = append(pts,
			float32(c+r*math.Cos(a0)), float32(c+r*math.Sin(a0)),
			float32(c+r*math.Cos(a1)), float32(c+r*math.Sin(a1)),
		)
	}
	sh.Polygon(img, pts, config.GearColor)
	sh.Disc(img, float32(c), float32(c), float32(c*0.3), config.BackgroundColor)
}

func drawShieldPickup(sh *render.Shapes, img *ebiten.Image) {
	c := float32(img.Bounds().Dx()) / 2
	sh.Disc(img, c, c, c*0.85, render.WithAlpha(config.ShieldPickupColor, 0.3))
	sh.Arc(img, c, c, c*0.7, -math.Pi*0.85, -math.Pi*0.15, 5, config.ShieldPickupColor)
	sh.Ring(img, c, c, c*0.85, 2, config.ShieldPickupColor)
}

// drawGlow рисует мягкое радиальное пятно для звёзд и вспышек выстрела.
func drawGlow(sh *render.Shapes, img *ebiten.Image) {
	c := float32(img.Bounds().Dx()) / 2
	for i := 8; i >= 1; i-- {
		r := c * float32(i) / 8
		a := 0.12 * float64(9-i) / 8
		sh.Disc(img, c, c, r, render.WithAlpha(color.RGBA{255, 255, 255, 255}, a))
	}
}
