// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PauseButton — круглая кнопка паузы в углу экрана.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image, shapes *render.Shapes) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		pts := []float32{b.X - s*0.6, b.Y - s*0.7, b.X - s*0.6, b.Y + s*0.7, b.X + s*0.7, b.Y}
		shapes.Polygon(screen, pts, b.PlayColor)
		return
	}
	// Две полоски (pause)
	width := s * 0.3
	height := s * 1.2
	spacing := s * 0.25
	shapes.Rect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor)
	shapes.Rect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor)
}

// Clicked reports a left click inside the button circle this frame.
func (b *PauseButton) Clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
