// internal/assets/assets.go
package assets

import (
	"log"

	"go-star-shooter/pkg/render"
)

// Assets — всё, чем рисуют сцены.
type Assets struct {
	Fonts   *Fonts
	Sprites *Sprites
	Shapes  *render.Shapes
}

// Step — именованный шаг загрузки, его выполняет сцена предзагрузки.
type Step struct {
	Name string
	Run  func(a *Assets) error
}

// Steps возвращает шаги загрузки по порядку.
func Steps() []Step {
	return []Step{
		{"fonts", func(a *Assets) error {
			f, err := LoadFonts()
			if err != nil {
				return err
			}
			a.Fonts = f
			return nil
		}},
		{"shapes", func(a *Assets) error {
			a.Shapes = render.NewShapes()
			return nil
		}},
		{"sprites", func(a *Assets) error {
			a.Sprites = NewSprites(a.Shapes)
			return nil
		}},
	}
}

// Load выполняет все шаги сразу.
func Load() (*Assets, error) {
	a := &Assets{}
	for _, s := range Steps() {
		if err := s.Run(a); err != nil {
			return nil, err
		}
		log.Printf("Loaded %s", s.Name)
	}
	return a, nil
}
