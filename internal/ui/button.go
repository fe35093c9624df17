// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-star-shooter/internal/config"
	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Button — прямоугольная кнопка с текстом.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Face       font.Face
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Focused    bool // выбрана с клавиатуры
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		Face:       face,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	return image.Pt(ebiten.CursorPosition()).In(b.Rect)
}

// Clicked reports a left click on the button this frame.
func (b *Button) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Hovered()
}

func (b *Button) Draw(screen *ebiten.Image, shapes *render.Shapes) {
	bg := b.BgColor
	if b.Focused || b.Hovered() {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	shapes.Rect(screen, x, y, w, h, bg)
	shapes.Frame(screen, x, y, w, h, 2, config.TextDimColor)

	bounds := text.BoundString(b.Face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Face, tx, ty, b.TextColor)
}

// CenteredRect returns a w×h rectangle centred horizontally on cx with its top at y.
func CenteredRect(cx, y, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, y, cx+w/2, y+h)
}
