// internal/ui/menu.go
package ui

import (
	"go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Menu — вертикальный список кнопок, управляется мышью или клавиатурой.
type Menu struct {
	Buttons []*Button
	focus   int
}

func NewMenu(buttons ...*Button) *Menu {
	m := &Menu{Buttons: buttons}
	m.setFocus(0)
	return m
}

func (m *Menu) setFocus(i int) {
	n := len(m.Buttons)
	if n == 0 {
		return
	}
	m.focus = (i%n + n) % n
	for j, b := range m.Buttons {
		b.Focused = j == m.focus
	}
}

// Update возвращает индекс нажатой кнопки или -1.
func (m *Menu) Update() int {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.setFocus(m.focus + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.setFocus(m.focus - 1)
	}
	for i, b := range m.Buttons {
		if b.Hovered() {
			m.setFocus(i)
		}
		if b.Clicked() {
			return i
		}
	}
	if len(m.Buttons) > 0 && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		return m.focus
	}
	return -1
}

func (m *Menu) Draw(screen *ebiten.Image, shapes *render.Shapes) {
	for _, b := range m.Buttons {
		b.Draw(screen, shapes)
	}
}
