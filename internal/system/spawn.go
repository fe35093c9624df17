// internal/system/spawn.go
package system

import (
	"math"
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/utils"
	"go-star-shooter/pkg/geom"
)

// SpawnDirector поддерживает число врагов у лимита: спавнит по таймеру и
// небольшой пачкой после каждого убийства.
type SpawnDirector struct {
	world           *entity.World
	clock           *clock.Clock
	scheduler       *clock.Scheduler
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	catalog         defs.EnemyCatalog
	maxActive       int
	interval        time.Duration
	timer           clock.TimerID
	lastSpawnAt     map[string]time.Duration
}

func NewSpawnDirector(world *entity.World, clk *clock.Clock, scheduler *clock.Scheduler,
	eventDispatcher *event.Dispatcher, rng *utils.PRNGService, catalog defs.EnemyCatalog, maxActive int) *SpawnDirector {
	s := &SpawnDirector{
		world:           world,
		clock:           clk,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		catalog:         catalog,
		maxActive:       maxActive,
		interval:        config.SpawnInterval,
		lastSpawnAt:     make(map[string]time.Duration),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// Cap returns the population limit.
func (s *SpawnDirector) Cap() int { return s.maxActive }

// Start выпускает первую волну и взводит периодический таймер.
func (s *SpawnDirector) Start() {
	s.Stop()
	now := s.clock.Now()
	for i := range s.catalog {
		s.lastSpawnAt[s.catalog[i].ID] = now
	}
	s.SpawnWave(s.rng.Between(1, s.maxActive))
	s.timer = s.scheduler.Every(s.interval, func() {
		s.SpawnWave(1)
	})
}

// Stop отменяет периодический таймер.
func (s *SpawnDirector) Stop() {
	if s.timer != 0 {
		s.scheduler.Cancel(s.timer)
		s.timer = 0
	}
}

// Running reports whether the periodic timer is armed.
func (s *SpawnDirector) Running() bool {
	return s.timer != 0 && s.scheduler.Pending(s.timer)
}

// OnEvent заменяет сбитого врага не более чем ReplacementBurst новыми.
func (s *SpawnDirector) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		s.SpawnWave(config.ReplacementBurst)
	}
}

// SpawnWave делает до n попыток спавна и останавливается на лимите.
func (s *SpawnDirector) SpawnWave(n int) int {
	spawned := 0
	for i := 0; i < n; i++ {
		if s.world.Enemies.Active() >= s.maxActive {
			break
		}
		if s.SpawnOne() {
			spawned++
		}
	}
	return spawned
}

// Pick выбирает следующий архетип взвешенным броском. Редкий архетип,
// которого нет на экране дольше его окна, выбирается принудительно.
func (s *SpawnDirector) Pick() *defs.EnemyDefinition {
	now := s.clock.Now()
	for _, d := range s.catalog.Scarce() {
		if s.world.CountEnemies(d.Kind) == 0 && now-s.lastSpawnAt[d.ID] > d.ScarcityWindow() {
			return d
		}
	}
	idx := utils.ChooseWeighted(s.rng, s.catalog, func(d defs.EnemyDefinition) int {
		return d.Weight
	})
	return &s.catalog[idx]
}

// SpawnOne создаёт одного врага. Запрос отбрасывается после конца забега,
// на лимите, при пустом пуле и когда архетип уже достиг MaxAlive.
func (s *SpawnDirector) SpawnOne() bool {
	if s.world.Run.GameOver || s.world.Enemies.Active() >= s.maxActive {
		return false
	}
	def := s.Pick()
	if def.MaxAlive > 0 && s.world.CountEnemies(def.Kind) >= def.MaxAlive {
		return false
	}
	id, e, ok := s.world.Enemies.Acquire()
	if !ok {
		return false
	}
	now := s.clock.Now()
	x := s.rng.FloatBetween(config.EnemySpawnMarginX, s.world.Width-config.EnemySpawnMarginX)
	width := config.EnemyDisplayWidth * def.Scale
	*e = component.Enemy{
		Def:          def,
		Pos:          geom.V(x, config.EnemySpawnY),
		Vel:          geom.V(0, s.rng.FloatBetween(def.SpeedMin, def.SpeedMax)),
		Rotation:     math.Pi / 2,
		HP:           def.Health,
		MaxHP:        def.Health,
		Radius:       def.HitboxRadius,
		DisplayWidth: width,
		SpawnedAt:    now,
	}
	if def.Gun != nil {
		e.NextShotAt = now + s.rng.DurationBetween(def.Gun.FirstShotMinMs, def.Gun.FirstShotMaxMs)
	}
	if def.Weave != nil {
		e.Weave = &component.WeavePattern{
			BaseX:  x,
			Amp:    def.Weave.Amplitude,
			Freq:   def.Weave.Frequency,
			Offset: s.rng.FloatBetween(0, 2*math.Pi),
		}
	}
	if sh := NewEnemyShield(id, def, width); sh != nil {
		sh.Center = e.Pos
		e.Shield = sh
	}
	s.lastSpawnAt[def.ID] = now
	s.eventDispatcher.Emit(event.EnemySpawned, event.EnemySpawnedData{ID: id, Kind: def.Kind})
	return true
}
