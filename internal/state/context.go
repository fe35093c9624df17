// internal/state/context.go
package state

import (
	"go-star-shooter/internal/assets"
	"go-star-shooter/internal/audio"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/sound"
)

// StartScene — сцена, в которую переходит предзагрузка.
type StartScene string

const (
	StartIntro StartScene = "intro"
	StartMenu  StartScene = "menu"
	StartGame  StartScene = "game"
)

// Context — общий для всех сцен. Assets и Audio заполняет предзагрузка,
// Audio остаётся nil, если аудиоустройство недоступно.
type Context struct {
	Settings *config.Settings
	Assets   *assets.Assets
	Audio    *audio.Manager
	Start    StartScene
	Seed     int64
	Debug    bool
	Catalog  defs.EnemyCatalog
}

// click — щелчок интерфейса, если звук поднят.
func (c *Context) click() {
	c.Audio.Play(sound.EffectClick)
}
