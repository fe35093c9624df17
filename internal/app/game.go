// internal/app/game.go
package app

import (
	"log"
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/system"
	"go-star-shooter/internal/utils"
)

// Options tunes a Game. Zero values fall back to the built-in defaults.
type Options struct {
	Seed             int64
	Width, Height    float64
	Catalog          defs.EnemyCatalog
	MaxActiveEnemies int
}

// Game — симуляция одной игровой сессии. Рендерер она не трогает,
// сцены сами читают World для отрисовки.
type Game struct {
	World           *entity.World
	Clock           *clock.Clock
	Scheduler       *clock.Scheduler
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Settings        *config.Settings

	RunSystem        *system.RunSystem
	EffectSystem     *system.EffectSystem
	CollisionSystem  *system.CollisionSystem
	ShieldSystem     *system.ShieldSystem
	CombatSystem     *system.CombatSystem
	PickupSystem     *system.PickupSystem
	SpawnDirector    *system.SpawnDirector
	WeaponSystem     *system.WeaponSystem
	BeamSystem       *system.BeamSystem
	PlayerSystem     *system.PlayerSystem
	EnemySystem      *system.EnemySystem
	ProjectileSystem *system.ProjectileSystem
	StarfieldSystem  *system.StarfieldSystem
}

// NewGame связывает все системы. Порядок подписки на EnemyKilled важен:
// сначала счёт, потом дроп бонусов, потом спавн замены.
func NewGame(settings *config.Settings, opts Options) *Game {
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if len(opts.Catalog) == 0 {
		opts.Catalog = defs.DefaultEnemyCatalog()
	}
	if opts.MaxActiveEnemies <= 0 {
		opts.MaxActiveEnemies = config.MaxActiveEnemies
	}

	world := entity.NewWorld(opts.Width, opts.Height)
	clk := clock.New()
	scheduler := clock.NewScheduler(clk)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		World:           world,
		Clock:           clk,
		Scheduler:       scheduler,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Settings:        settings,
	}
	g.PlayerSystem = system.NewPlayerSystem(world)
	g.PlayerSystem.Spawn()

	g.RunSystem = system.NewRunSystem(world, clk, eventDispatcher)
	g.EffectSystem = system.NewEffectSystem(world, clk, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(world)
	g.ShieldSystem = system.NewShieldSystem(world, clk, eventDispatcher, g.EffectSystem)
	g.CombatSystem = system.NewCombatSystem(world, clk, eventDispatcher, g.CollisionSystem, g.ShieldSystem, g.EffectSystem, g.RunSystem)
	g.PickupSystem = system.NewPickupSystem(world, eventDispatcher, rng, g.CollisionSystem, g.ShieldSystem, g.RunSystem)
	g.SpawnDirector = system.NewSpawnDirector(world, clk, scheduler, eventDispatcher, rng, opts.Catalog, opts.MaxActiveEnemies)
	g.WeaponSystem = system.NewWeaponSystem(world, clk, scheduler, eventDispatcher, defs.DefaultWeapons())
	g.BeamSystem = system.NewBeamSystem(world, clk, g.CombatSystem, g.ShieldSystem)
	g.EnemySystem = system.NewEnemySystem(world, clk, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.StarfieldSystem = system.NewStarfieldSystem(world, rng)
	g.StarfieldSystem.Populate()

	g.RunSystem.OnEnd(g.SpawnDirector.Stop)
	g.RunSystem.OnEnd(g.WeaponSystem.CancelAll)
	return g
}

// Start начинает новый забег с чистыми часами и пулами, полным оружием и первой волной.
func (g *Game) Start() {
	g.Scheduler.Clear()
	g.Clock.Reset()
	g.World.ClearEntities()
	g.CollisionSystem.Reset()
	g.PlayerSystem.Spawn()
	g.RunSystem.Start()
	g.WeaponSystem.Reset()
	g.World.Stars.SpeedMul = 1
	g.SpawnDirector.Start()
	log.Printf("Run started (seed %d)", g.Rng.Seed())
}

// Restart is Start for an already running game.
func (g *Game) Restart() {
	g.Start()
}

func (g *Game) Pause()         { g.Clock.Pause() }
func (g *Game) Resume()        { g.Clock.Resume() }
func (g *Game) IsPaused() bool { return g.Clock.IsPaused() }

// Over reports whether the run has ended.
func (g *Game) Over() bool { return g.World.Run.GameOver }

// Update adapts the float-seconds frame delta used by the scenes.
func (g *Game) Update(deltaTime float64, in Input) {
	g.Step(clock.FromSeconds(deltaTime), in)
}

// Step продвигает симуляцию на dt. Порядок этапов ниже — часть правил игры.
func (g *Game) Step(dt time.Duration, in Input) {
	if g.Clock.IsPaused() {
		return
	}
	g.Clock.Advance(dt)
	deltaTime := dt.Seconds()

	// Таймеры: конец перезарядки и периодический спавн.
	g.Scheduler.Poll()
	g.WeaponSystem.Update()

	// Ввод
	if !g.Over() {
		if in.SwitchBlue {
			g.WeaponSystem.Switch(defs.WeaponBlue)
		}
		if in.SwitchRed {
			g.WeaponSystem.Switch(defs.WeaponRed)
		}
		if in.Reload {
			g.WeaponSystem.Reload()
		}
	}

	// Движение
	g.PlayerSystem.Update(deltaTime, in.Controls())
	g.StarfieldSystem.Update(deltaTime)

	// Стрельба
	if in.Fire && g.WeaponSystem.Fire() == system.FireBeam {
		g.BeamSystem.Cast()
	} else {
		g.BeamSystem.Stop()
	}

	// Поведение врагов
	g.EnemySystem.Update(deltaTime)
	g.ShieldSystem.Track()

	// Полёт и попадания
	g.ProjectileSystem.Update(deltaTime)
	g.PickupSystem.Update(deltaTime)
	g.CollisionSystem.Sync()
	g.ShieldSystem.Intercept()
	g.CombatSystem.Update()
	g.PickupSystem.Collect()

	// Очистка
	g.ProjectileSystem.Cull()
	g.EnemySystem.Cull()
	g.PickupSystem.Cull()
	g.EffectSystem.Update(deltaTime)

	g.RunSystem.Check()
}
