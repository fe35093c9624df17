// internal/state/intro_state.go
package state

import (
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	introCharsPerSecond = 28.0
	introHold           = 2.0 // секунды после последней буквы
)

var introCredits = []string{
	"the fleet is gone",
	"one ship is left between the raiders and home",
	"blue cannon: fifteen rounds, fast reload",
	"red beam: three seconds of fire, then a long cooldown",
	"survive five minutes or destroy twenty five raiders",
}

// IntroState — заставка с печатающимся текстом. Любая клавиша пропускает.
type IntroState struct {
	sm      *StateMachine
	ctx     *Context
	elapsed float64
	total   int
	fade    Fade
}

func NewIntroState(sm *StateMachine, ctx *Context) *IntroState {
	total := 0
	for _, l := range introCredits {
		total += len(l)
	}
	return &IntroState{sm: sm, ctx: ctx, total: total}
}

func (s *IntroState) Enter() {
	s.fade.In()
	s.ctx.Audio.Play(sound.EffectIntro)
}

func (s *IntroState) skipPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (s *IntroState) Update(deltaTime float64) {
	s.fade.Update(deltaTime)
	if s.fade.Busy() {
		return
	}
	s.elapsed += deltaTime
	typed := int(s.elapsed * introCharsPerSecond)
	if s.skipPressed() || float64(typed-s.total) > introHold*introCharsPerSecond {
		s.fade.Out(func() { s.sm.SetState(NewMenuState(s.sm, s.ctx)) })
	}
}

func (s *IntroState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := s.ctx.Assets.Fonts

	b := text.BoundString(fonts.Title, config.Title)
	text.Draw(screen, config.Title, fonts.Title, (config.ScreenWidth-b.Dx())/2, 160, config.TextLightColor)

	left := int(s.elapsed * introCharsPerSecond)
	y := 260
	for _, line := range introCredits {
		if left <= 0 {
			break
		}
		shown := line
		if left < len(line) {
			shown = line[:left]
		}
		left -= len(line)
		lb := text.BoundString(fonts.Regular, line)
		text.Draw(screen, shown, fonts.Regular, (config.ScreenWidth-lb.Dx())/2, y, config.TextDimColor)
		y += 34
	}
	hint := "PRESS ANY KEY"
	hb := text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (config.ScreenWidth-hb.Dx())/2, config.ScreenHeight-40, config.TextDimColor)

	s.fade.Draw(screen, s.ctx.Assets.Shapes)
}

func (s *IntroState) Exit() {}
