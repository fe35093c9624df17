// internal/state/boot_state.go
package state

import (
	"go-star-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// BootState fills in defaults and hands over to preload on the first frame.
type BootState struct {
	sm  *StateMachine
	ctx *Context
}

func NewBootState(sm *StateMachine, ctx *Context) *BootState {
	return &BootState{sm: sm, ctx: ctx}
}

func (b *BootState) Enter() {
	if b.ctx.Settings == nil {
		b.ctx.Settings = config.DefaultSettings()
	}
	if b.ctx.Start == "" {
		b.ctx.Start = StartIntro
	}
}

func (b *BootState) Update(deltaTime float64) {
	b.sm.SetState(NewPreloadState(b.sm, b.ctx))
}

func (b *BootState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
}

func (b *BootState) Exit() {}
