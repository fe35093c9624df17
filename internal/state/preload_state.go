// internal/state/preload_state.go
package state

import (
	"fmt"
	"log"

	"go-star-shooter/internal/assets"
	"go-star-shooter/internal/audio"
	"go-star-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PreloadState runs one loading step per frame so the progress bar moves.
type PreloadState struct {
	sm     *StateMachine
	ctx    *Context
	steps  []assets.Step
	next   int
	loaded *assets.Assets
	err    error
}

func NewPreloadState(sm *StateMachine, ctx *Context) *PreloadState {
	steps := assets.Steps()
	steps = append(steps, assets.Step{Name: "sound", Run: func(*assets.Assets) error {
		m, err := audio.NewManager(ctx.Settings)
		if err != nil {
			// Без звука играть можно.
			log.Printf("Audio disabled: %v", err)
			return nil
		}
		ctx.Audio = m
		return nil
	}})
	return &PreloadState{sm: sm, ctx: ctx, steps: steps, loaded: &assets.Assets{}}
}

func (p *PreloadState) Enter() {}

func (p *PreloadState) Update(deltaTime float64) {
	if p.err != nil {
		return
	}
	if p.next < len(p.steps) {
		s := p.steps[p.next]
		if err := s.Run(p.loaded); err != nil {
			p.err = fmt.Errorf("failed to load %s: %w", s.Name, err)
			log.Print(p.err)
			return
		}
		log.Printf("Loaded %s", s.Name)
		p.next++
		return
	}
	p.ctx.Assets = p.loaded
	p.sm.SetState(p.startScene())
}

func (p *PreloadState) startScene() State {
	switch p.ctx.Start {
	case StartGame:
		return NewGameState(p.sm, p.ctx)
	case StartMenu:
		return NewMenuState(p.sm, p.ctx)
	}
	return NewIntroState(p.sm, p.ctx)
}

func (p *PreloadState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if p.err != nil {
		ebitenutil.DebugPrint(screen, p.err.Error())
		return
	}
	// Фонт ещё может быть не загружен, поэтому только полоса.
	const w, h = 400, 12
	x := float32(config.ScreenWidth-w) / 2
	y := float32(config.ScreenHeight) / 2
	progress := float32(p.next) / float32(len(p.steps))
	vector.DrawFilledRect(screen, x, y, w, h, config.HealthEmptyColor, true)
	vector.DrawFilledRect(screen, x, y, w*progress, h, config.BlueWeaponColor, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.TextDimColor, true)
}

func (p *PreloadState) Exit() {}
