// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	start := flag.String("start", string(state.StartIntro), "first scene: intro, menu or game")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "draw hitboxes")
	enemies := flag.String("enemies", "", "path to an enemy definitions JSON file")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var catalog defs.EnemyCatalog
	if *enemies != "" {
		c, err := defs.LoadEnemyDefinitions(*enemies)
		if err != nil {
			log.Fatalf("failed to load enemies: %v", err)
		}
		catalog = c
		log.Printf("Loaded %d enemy definitions from %s", len(c), *enemies)
	}

	ctx := &state.Context{
		Settings: config.DefaultSettings(),
		Start:    state.StartScene(*start),
		Seed:     *seed,
		Debug:    *debug,
		Catalog:  catalog,
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewBootState(sm, ctx))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
