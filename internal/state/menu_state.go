// internal/state/menu_state.go
package state

import (
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	menuButtonWidth  = 260
	menuButtonHeight = 48
	menuButtonGap    = 16
)

// MenuState — главное меню (ангар).
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	menu  *ui.Menu
	music *ui.Button
	fade  Fade
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

// menuButtons lays out labels as a centred column starting at y.
func menuButtons(ctx *Context, y int, labels ...string) []*ui.Button {
	buttons := make([]*ui.Button, len(labels))
	for i, l := range labels {
		rect := ui.CenteredRect(config.ScreenWidth/2, y+i*(menuButtonHeight+menuButtonGap), menuButtonWidth, menuButtonHeight)
		buttons[i] = ui.NewButton(rect, l, ctx.Assets.Fonts.Regular)
	}
	return buttons
}

func musicLabel(s *config.Settings) string {
	return "Music: " + string(s.MusicTrack)
}

func (m *MenuState) Enter() {
	buttons := menuButtons(m.ctx, 260, "Start", musicLabel(m.ctx.Settings), "Quit")
	m.music = buttons[1]
	m.menu = ui.NewMenu(buttons...)
	m.fade.In()
	m.ctx.Audio.SyncMusic()
}

func (m *MenuState) Update(deltaTime float64) {
	m.fade.Update(deltaTime)
	if m.fade.Busy() {
		return
	}
	switch m.menu.Update() {
	case 0:
		m.ctx.click()
		m.fade.Out(func() { m.sm.SetState(NewGameState(m.sm, m.ctx)) })
	case 1:
		m.ctx.click()
		if m.ctx.Settings.MusicTrack == config.TrackCosmic {
			m.ctx.Settings.MusicTrack = config.TrackChill
		} else {
			m.ctx.Settings.MusicTrack = config.TrackCosmic
		}
		m.music.Text = musicLabel(m.ctx.Settings)
		m.ctx.Audio.SyncMusic()
	case 2:
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := m.ctx.Assets.Fonts
	b := text.BoundString(fonts.Title, config.Title)
	text.Draw(screen, config.Title, fonts.Title, (config.ScreenWidth-b.Dx())/2, 170, config.TextLightColor)
	m.menu.Draw(screen, m.ctx.Assets.Shapes)
	m.fade.Draw(screen, m.ctx.Assets.Shapes)
}

func (m *MenuState) Exit() {}
