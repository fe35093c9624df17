// internal/render/renderer.go
package render

import (
	"image/color"
	"math"
	"time"

	"go-star-shooter/internal/assets"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/system"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
	prender "go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Renderer рисует мир. Состояние симуляции он только читает.
type Renderer struct {
	assets *assets.Assets
	shapes *prender.Shapes
	Debug  bool
}

func NewRenderer(a *assets.Assets) *Renderer {
	return &Renderer{assets: a, shapes: a.Shapes}
}

// Draw рисует весь мир от дальнего слоя к ближнему.
func (r *Renderer) Draw(screen *ebiten.Image, world *entity.World, now time.Duration) {
	screen.Fill(config.BackgroundColor)
	r.drawStars(screen, world)
	r.drawPickups(screen, world)
	r.drawEnemies(screen, world, now)
	r.drawBullets(screen, world)
	r.drawBeam(screen, world, now)
	r.drawPlayer(screen, world, now)
	r.drawEffects(screen, world, now)
	if r.Debug {
		r.drawHitboxes(screen, world)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image, world *entity.World) {
	field := &world.Stars
	glow := r.assets.Sprites.Glow
	gw := float64(glow.Bounds().Dx())
	for i := range field.Stars {
		st := &field.Stars[i]
		alpha := system.Brightness(field, st)
		if st.Blob {
			op := &ebiten.DrawImageOptions{}
			scale := st.Size / gw
			op.GeoM.Translate(-gw/2, -gw/2)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(st.Pos.X, st.Pos.Y)
			op.ColorScale.ScaleAlpha(float32(alpha))
			screen.DrawImage(glow, op)
			continue
		}
		clr := prender.WithAlpha(color.RGBA{255, 255, 255, 255}, alpha)
		r.shapes.Disc(screen, float32(st.Pos.X), float32(st.Pos.Y), float32(st.Size), clr)
	}
}

// drawSprite draws img centred on pos, scaled to width and rotated by angle.
func drawSprite(screen, img *ebiten.Image, pos geom.Vec2, width, angle float64, tint *color.RGBA) {
	w := float64(img.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -w/2)
	op.GeoM.Scale(width/w, width/w)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	if tint != nil {
		op.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, 1)
	}
	screen.DrawImage(img, op)
}

var flashTint = color.RGBA{255, 120, 120, 255}

func (r *Renderer) drawEnemies(screen *ebiten.Image, world *entity.World, now time.Duration) {
	world.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		var tint *color.RGBA
		if now < e.FlashUntil {
			tint = &flashTint
		}
		drawSprite(screen, r.assets.Sprites.Enemy(e.Def.Kind), e.Pos, e.DisplayWidth, e.Rotation, tint)
		if e.Shield != nil {
			r.drawShield(screen, e.Shield, config.ShieldColor, now)
		}
		if e.HP < e.MaxHP {
			r.drawHealthBar(screen, e)
		}
	})
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, e *component.Enemy) {
	w := float32(e.DisplayWidth * 0.6)
	x := float32(e.Pos.X) - w/2
	y := float32(e.Pos.Y-e.DisplayWidth/2) - 8
	r.shapes.Rect(screen, x, y, w, 4, config.HealthEmptyColor)
	r.shapes.Rect(screen, x, y, w*float32(e.HP)/float32(e.MaxHP), 4, config.RedWeaponColor)
}

// drawShield обводит дугу щита, после блока она ненадолго ярче.
func (r *Renderer) drawShield(screen *ebiten.Image, sh *component.Shield, clr color.RGBA, now time.Duration) {
	alpha := 0.35 + 0.65*float64(sh.HP)/float64(sh.MaxHP)
	if now < sh.HitUntil {
		clr = prender.MixColor(clr, color.RGBA{255, 255, 255, 255}, 0.6)
		alpha = 1
	}
	a0 := float32(sh.Facing - sh.HalfArc)
	a1 := float32(sh.Facing + sh.HalfArc)
	r.shapes.Arc(screen, float32(sh.Center.X), float32(sh.Center.Y), float32(sh.Radius), a0, a1,
		float32(sh.Thickness), prender.WithAlpha(clr, alpha))
}

func (r *Renderer) drawBullets(screen *ebiten.Image, world *entity.World) {
	world.PlayerBullets.Each(func(_ types.EntityID, b *component.Bullet) {
		tail := b.Pos.Sub(geom.FromAngle(b.Angle).Scale(14))
		r.shapes.Line(screen, float32(tail.X), float32(tail.Y), float32(b.Pos.X), float32(b.Pos.Y),
			float32(b.Radius), config.BlueWeaponColor)
	})
	world.EnemyBullets.Each(func(_ types.EntityID, b *component.Bullet) {
		r.shapes.Disc(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), config.EnemyBulletColor)
	})
}

func (r *Renderer) drawBeam(screen *ebiten.Image, world *entity.World, now time.Duration) {
	beam := &world.Beam
	if !beam.Active {
		return
	}
	end := beam.End()
	pulse := 0.75 + 0.25*math.Sin(now.Seconds()*40)
	x0, y0 := float32(beam.Origin.X), float32(beam.Origin.Y)
	x1, y1 := float32(end.X), float32(end.Y)
	r.shapes.Line(screen, x0, y0, x1, y1, 14, prender.WithAlpha(config.RedWeaponColor, 0.25*pulse))
	r.shapes.Line(screen, x0, y0, x1, y1, 6, prender.WithAlpha(config.RedWeaponColor, 0.8*pulse))
	r.shapes.Line(screen, x0, y0, x1, y1, 2, color.RGBA{255, 230, 230, 255})
	if !beam.Target.IsZero() {
		r.shapes.Disc(screen, x1, y1, float32(6+4*pulse), prender.WithAlpha(config.RedWeaponColor, 0.9))
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, world *entity.World, now time.Duration) {
	p := &world.Player
	if !p.Visible || (world.Run.GameOver && world.Run.Result == component.ResultDefeat) {
		return
	}
	// Мигание после попадания.
	if now < p.FlashUntil && (now/(50*time.Millisecond))%2 == 0 {
		return
	}
	drawSprite(screen, r.assets.Sprites.Player, p.Pos, p.Width, p.Heading(), nil)
	if p.Shield != nil {
		r.drawShield(screen, p.Shield, config.PlayerShieldColor, now)
	}
}

func (r *Renderer) drawPickups(screen *ebiten.Image, world *entity.World) {
	world.Pickups.Each(func(_ types.EntityID, pk *component.Pickup) {
		img := r.assets.Sprites.Gear
		if pk.Kind == defs.PickupShield {
			img = r.assets.Sprites.Shield
		}
		drawSprite(screen, img, pk.Pos, pk.Radius*2, pk.Spin, nil)
	})
}

func (r *Renderer) drawEffects(screen *ebiten.Image, world *entity.World, now time.Duration) {
	world.Effects.Each(func(_ types.EntityID, fx *component.Effect) {
		t := fx.Progress(now)
		switch fx.Kind {
		case component.EffectExplosion:
			radius := float32(fx.MaxRadius * (0.3 + 0.7*t))
			clr := prender.WithAlpha(fx.Color, 1-t)
			r.shapes.Disc(screen, float32(fx.Pos.X), float32(fx.Pos.Y), radius*0.6, prender.WithAlpha(fx.Color, 0.5*(1-t)))
			r.shapes.Ring(screen, float32(fx.Pos.X), float32(fx.Pos.Y), radius, 3, clr)
		case component.EffectDamageNumber:
			face := r.assets.Fonts.Small
			b := text.BoundString(face, fx.Text)
			text.Draw(screen, fx.Text, face, int(fx.Pos.X)-b.Dx()/2, int(fx.Pos.Y), prender.WithAlpha(fx.Color, 1-t))
		}
	})
}

var hitboxColor = color.RGBA{0, 255, 0, 160}

func (r *Renderer) drawHitboxes(screen *ebiten.Image, world *entity.World) {
	p := &world.Player
	r.shapes.Ring(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), 1, hitboxColor)
	world.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		r.shapes.Ring(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), 1, hitboxColor)
		if e.Shield != nil {
			arc := e.Shield.Arc()
			a0 := float32(arc.Facing - arc.HalfAngle)
			a1 := float32(arc.Facing + arc.HalfAngle)
			r.shapes.Arc(screen, float32(arc.Center.X), float32(arc.Center.Y), float32(arc.Reach()), a0, a1, 1, hitboxColor)
		}
	})
	world.Pickups.Each(func(_ types.EntityID, pk *component.Pickup) {
		r.shapes.Ring(screen, float32(pk.Pos.X), float32(pk.Pos.Y), float32(pk.Radius), 1, hitboxColor)
	})
}
