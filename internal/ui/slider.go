// internal/ui/slider.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-star-shooter/internal/config"
	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const sliderKeyStep = 0.05

// Slider — значение 0..1, меняется перетаскиванием или стрелками в фокусе.
type Slider struct {
	Rect     image.Rectangle
	Label    string
	Face     font.Face
	Value    float64
	Focused  bool
	dragging bool
}

func NewSlider(rect image.Rectangle, label string, face font.Face, value float64) *Slider {
	return &Slider{Rect: rect, Label: label, Face: face, Value: value}
}

// valueAt maps a cursor x to a slider value.
func (s *Slider) valueAt(x int) float64 {
	v := float64(x-s.Rect.Min.X) / float64(s.Rect.Dx())
	return math.Max(0, math.Min(1, v))
}

// Update сообщает, изменилось ли значение в этом кадре.
func (s *Slider) Update() bool {
	old := s.Value
	x, y := ebiten.CursorPosition()
	hit := s.Rect.Inset(-8)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && image.Pt(x, y).In(hit) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if s.dragging {
		s.Value = s.valueAt(x)
	}
	if s.Focused {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			s.Value = math.Max(0, s.Value-sliderKeyStep)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			s.Value = math.Min(1, s.Value+sliderKeyStep)
		}
	}
	return s.Value != old
}

func (s *Slider) Draw(screen *ebiten.Image, shapes *render.Shapes) {
	x, y := float32(s.Rect.Min.X), float32(s.Rect.Min.Y)
	w, h := float32(s.Rect.Dx()), float32(s.Rect.Dy())
	shapes.Rect(screen, x, y+h/2-3, w, 6, config.HealthEmptyColor)
	shapes.Rect(screen, x, y+h/2-3, w*float32(s.Value), 6, config.BlueWeaponColor)
	knob := config.TextLightColor
	if s.Focused || s.dragging {
		knob = config.ReloadColor
	}
	shapes.Disc(screen, x+w*float32(s.Value), y+h/2, h/2, knob)

	label := fmt.Sprintf("%s: %d%%", s.Label, int(math.Round(s.Value*100)))
	text.Draw(screen, label, s.Face, s.Rect.Min.X, s.Rect.Min.Y-8, config.TextLightColor)
}
