// internal/state/fade.go
package state

import (
	"image/color"
	"math"

	"go-star-shooter/internal/config"
	prender "go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Fade — затемнение экрана при смене сцен. Out вызывает done ровно один раз,
// повторный Out во время затемнения игнорируется.
type Fade struct {
	Alpha float64
	out   bool
	in    bool
	done  func()
}

// In starts from black and clears.
func (f *Fade) In() {
	f.Alpha = 1
	f.in = true
	f.out = false
}

// Out затемняет экран и потом вызывает done. Возвращает false, если
// затемнение уже идёт.
func (f *Fade) Out(done func()) bool {
	if f.out {
		return false
	}
	f.out = true
	f.in = false
	f.done = done
	return true
}

// Busy — нужно ли игнорировать ввод.
func (f *Fade) Busy() bool {
	return f.out
}

func (f *Fade) Update(deltaTime float64) {
	step := deltaTime / config.FadeDuration
	switch {
	case f.out:
		f.Alpha = math.Min(1, f.Alpha+step)
		if f.Alpha >= 1 {
			f.out = false
			done := f.done
			f.done = nil
			if done != nil {
				done()
			}
		}
	case f.in:
		f.Alpha = math.Max(0, f.Alpha-step)
		if f.Alpha <= 0 {
			f.in = false
		}
	}
}

func (f *Fade) Draw(screen *ebiten.Image, shapes *prender.Shapes) {
	if f.Alpha <= 0 {
		return
	}
	black := color.RGBA{0, 0, 0, 255}
	shapes.Rect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, prender.WithAlpha(black, f.Alpha))
}
