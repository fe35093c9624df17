// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"go-star-shooter/internal/app"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/render"
	"go-star-shooter/internal/ui"
	prender "go-star-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type gameMode int

const (
	modePlaying gameMode = iota
	modePaused
	modeSettings
	modeOver
)

// GameState — состояние игры: забег, меню паузы, настройки и итог.
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	game     *app.Game
	renderer *render.Renderer
	hud      *ui.HUD
	pauseBtn *ui.PauseButton
	mode     gameMode
	fade     Fade

	pauseMenu    *ui.Menu
	settingsMenu *ui.Menu
	sfxButton    *ui.Button
	volume       *ui.Slider
	overMenu     *ui.Menu
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	g := app.NewGame(ctx.Settings, app.Options{Seed: ctx.Seed, Catalog: ctx.Catalog})
	renderer := render.NewRenderer(ctx.Assets)
	renderer.Debug = ctx.Debug
	return &GameState{
		sm:       sm,
		ctx:      ctx,
		game:     g,
		renderer: renderer,
		hud:      ui.NewHUD(ctx.Assets),
		pauseBtn: ui.NewPauseButton(config.ScreenWidth-30, 90, 14, config.TextLightColor, config.HealthColor),
	}
}

func sfxLabel(s *config.Settings) string {
	if s.SfxEnabled {
		return "Sound effects: on"
	}
	return "Sound effects: off"
}

func (g *GameState) Enter() {
	g.pauseMenu = ui.NewMenu(menuButtons(g.ctx, 220, "Continue", "Settings", "Back to menu")...)

	settings := menuButtons(g.ctx, 300, sfxLabel(g.ctx.Settings), "Back")
	g.sfxButton = settings[0]
	g.settingsMenu = ui.NewMenu(settings...)
	sliderRect := ui.CenteredRect(config.ScreenWidth/2, 240, menuButtonWidth, 20)
	g.volume = ui.NewSlider(sliderRect, "Music volume", g.ctx.Assets.Fonts.Regular, g.ctx.Settings.MusicVolume)

	g.game.Start()
	g.ctx.Audio.Attach(g.game.EventDispatcher)
	g.ctx.Audio.SyncMusic()
	g.fade.In()
}

// readInput maps the keyboard to one frame of player intent.
func readInput() app.Input {
	pressed := ebiten.IsKeyPressed
	return app.Input{
		Left:       pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
		Right:      pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
		Up:         pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
		Down:       pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS),
		Fire:       pressed(ebiten.KeySpace),
		Reload:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		SwitchBlue: inpututil.IsKeyJustPressed(ebiten.Key1),
		SwitchRed:  inpututil.IsKeyJustPressed(ebiten.Key2),
	}
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func (g *GameState) Update(deltaTime float64) {
	g.fade.Update(deltaTime)
	if g.fade.Busy() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}

	switch g.mode {
	case modePlaying:
		g.updatePlaying(deltaTime)
	case modePaused:
		g.updatePaused()
	case modeSettings:
		g.updateSettings()
	case modeOver:
		g.updateOver(deltaTime)
	}
}

func (g *GameState) updatePlaying(deltaTime float64) {
	if pausePressed() || g.pauseBtn.Clicked() {
		g.ctx.click()
		g.setPaused(true)
		return
	}
	g.game.Update(deltaTime, readInput())
	if g.game.Over() {
		run := g.game.World.Run
		log.Printf("Run over: %s, kills %d, survived %s", run.Result, run.KillCount, app.FormatClock(run.Survived(run.EndedAt)))
		g.overMenu = g.buildOverMenu(run.Result)
		g.mode = modeOver
	}
}

func (g *GameState) setPaused(paused bool) {
	g.pauseBtn.SetPaused(paused)
	if paused {
		g.game.Pause()
		g.mode = modePaused
		return
	}
	g.game.Resume()
	g.mode = modePlaying
}

func (g *GameState) updatePaused() {
	if pausePressed() || g.pauseBtn.Clicked() {
		g.setPaused(false)
		return
	}
	switch g.pauseMenu.Update() {
	case 0:
		g.ctx.click()
		g.setPaused(false)
	case 1:
		g.ctx.click()
		g.volume.Value = g.ctx.Settings.MusicVolume
		g.mode = modeSettings
	case 2:
		g.ctx.click()
		g.toMenu()
	}
}

func (g *GameState) updateSettings() {
	if pausePressed() {
		g.mode = modePaused
		return
	}
	if g.volume.Update() {
		g.ctx.Settings.SetMusicVolume(g.volume.Value)
		g.ctx.Audio.SyncMusic()
	}
	switch g.settingsMenu.Update() {
	case 0:
		g.ctx.Settings.ToggleSfx()
		g.sfxButton.Text = sfxLabel(g.ctx.Settings)
		g.ctx.click()
	case 1:
		g.ctx.click()
		g.mode = modePaused
	}
}

func (g *GameState) buildOverMenu(result component.RunResult) *ui.Menu {
	if result == component.ResultDefeat {
		return ui.NewMenu(menuButtons(g.ctx, 320, "Resume", "Return to hangar")...)
	}
	return ui.NewMenu(menuButtons(g.ctx, 320, "Return to hangar")...)
}

func (g *GameState) updateOver(deltaTime float64) {
	// Взрывы и цифры урона доигрывают после конца забега.
	g.game.Update(deltaTime, app.Input{})

	choice := g.overMenu.Update()
	if choice < 0 {
		return
	}
	g.ctx.click()
	if g.game.World.Run.Result == component.ResultDefeat && choice == 0 {
		g.fade.Out(func() {
			g.game.Restart()
			g.mode = modePlaying
			g.fade.In()
		})
		return
	}
	g.toMenu()
}

func (g *GameState) toMenu() {
	g.fade.Out(func() { g.sm.SetState(NewMenuState(g.sm, g.ctx)) })
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.World, g.game.Clock.Now())
	g.hud.Draw(screen, g.game.HUD())

	shapes := g.ctx.Assets.Shapes
	fonts := g.ctx.Assets.Fonts
	if g.mode != modeOver {
		g.pauseBtn.Draw(screen, shapes)
	}

	switch g.mode {
	case modePaused:
		g.dim(screen, shapes)
		g.title(screen, "PAUSED", config.TextLightColor)
		g.pauseMenu.Draw(screen, shapes)
	case modeSettings:
		g.dim(screen, shapes)
		g.title(screen, "SETTINGS", config.TextLightColor)
		g.volume.Draw(screen, shapes)
		g.settingsMenu.Draw(screen, shapes)
	case modeOver:
		g.dim(screen, shapes)
		run := g.game.World.Run
		c := config.HealthColor
		if run.Result == component.ResultDefeat {
			c = config.RedWeaponColor
		}
		g.title(screen, ui.ResultTitle(run.Result), c)
		line := fmt.Sprintf("kills %d   time %s", run.KillCount, app.FormatClock(run.Survived(run.EndedAt)))
		b := text.BoundString(fonts.Regular, line)
		text.Draw(screen, line, fonts.Regular, (config.ScreenWidth-b.Dx())/2, 270, config.TextDimColor)
		g.overMenu.Draw(screen, shapes)
	}
	g.fade.Draw(screen, shapes)
}

func (g *GameState) dim(screen *ebiten.Image, shapes *prender.Shapes) {
	shapes.Rect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, prender.WithAlpha(config.PanelColor, 0.7))
}

func (g *GameState) title(screen *ebiten.Image, s string, c color.RGBA) {
	face := g.ctx.Assets.Fonts.Large
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-b.Dx())/2, 190, c)
}

func (g *GameState) Exit() {
	g.ctx.Audio.Detach()
}
