package system

import (
	"testing"
	"time"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/internal/utils"
	"go-star-shooter/pkg/geom"
)

// rig wires the systems the same way the game does, without starting a run.
type rig struct {
	t          *testing.T
	world      *entity.World
	clock      *clock.Clock
	scheduler  *clock.Scheduler
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	catalog    defs.EnemyCatalog

	player     *PlayerSystem
	run        *RunSystem
	effects    *EffectSystem
	collision  *CollisionSystem
	shields    *ShieldSystem
	combat     *CombatSystem
	pickups    *PickupSystem
	spawn      *SpawnDirector
	weapons    *WeaponSystem
	beam       *BeamSystem
	enemies    *EnemySystem
	projectile *ProjectileSystem

	events map[event.EventType]int
}

func newRig(t *testing.T, catalog defs.EnemyCatalog, maxActive int) *rig {
	t.Helper()
	if catalog == nil {
		catalog = defs.DefaultEnemyCatalog()
	}
	r := &rig{
		t:          t,
		world:      entity.NewWorld(config.ScreenWidth, config.ScreenHeight),
		clock:      clock.New(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(99),
		catalog:    catalog,
		events:     make(map[event.EventType]int),
	}
	r.scheduler = clock.NewScheduler(r.clock)
	r.player = NewPlayerSystem(r.world)
	r.player.Spawn()
	r.run = NewRunSystem(r.world, r.clock, r.dispatcher)
	r.effects = NewEffectSystem(r.world, r.clock, r.dispatcher)
	r.collision = NewCollisionSystem(r.world)
	r.shields = NewShieldSystem(r.world, r.clock, r.dispatcher, r.effects)
	r.combat = NewCombatSystem(r.world, r.clock, r.dispatcher, r.collision, r.shields, r.effects, r.run)
	r.pickups = NewPickupSystem(r.world, r.dispatcher, r.rng, r.collision, r.shields, r.run)
	r.spawn = NewSpawnDirector(r.world, r.clock, r.scheduler, r.dispatcher, r.rng, r.catalog, maxActive)
	r.weapons = NewWeaponSystem(r.world, r.clock, r.scheduler, r.dispatcher, defs.DefaultWeapons())
	r.beam = NewBeamSystem(r.world, r.clock, r.combat, r.shields)
	r.enemies = NewEnemySystem(r.world, r.clock, r.dispatcher, r.rng)
	r.projectile = NewProjectileSystem(r.world)
	r.run.OnEnd(r.spawn.Stop)
	r.run.OnEnd(r.weapons.CancelAll)
	r.run.Start()

	for _, et := range []event.EventType{
		event.EnemyKilled, event.EnemySpawned, event.GameEnded, event.WeaponFired,
		event.ReloadStarted, event.ReloadFinished, event.ShieldAbsorbed, event.ShieldBroken,
		event.PlayerDamaged, event.PickupCollected,
	} {
		et := et
		r.dispatcher.Subscribe(et, event.ListenerFunc(func(event.Event) { r.events[et]++ }))
	}
	return r
}

// advance moves time forward and runs due timers, like the start of a frame.
func (r *rig) advance(d time.Duration) {
	r.clock.Advance(d)
	r.scheduler.Poll()
	r.weapons.Update()
}

func (r *rig) def(id string) *defs.EnemyDefinition {
	d, ok := r.catalog.ByID(id)
	if !ok {
		r.t.Fatalf("no enemy definition %q", id)
	}
	return d
}

func (r *rig) addEnemy(id string, x, y float64) (types.EntityID, *component.Enemy) {
	r.t.Helper()
	def := r.def(id)
	eid, e, ok := r.world.Enemies.Acquire()
	if !ok {
		r.t.Fatal("enemy pool exhausted")
	}
	width := config.EnemyDisplayWidth * def.Scale
	*e = component.Enemy{
		Def:          def,
		Pos:          geom.V(x, y),
		HP:           def.Health,
		MaxHP:        def.Health,
		Radius:       def.HitboxRadius,
		DisplayWidth: width,
	}
	e.Shield = NewEnemyShield(eid, def, width)
	r.shields.Track()
	return eid, e
}

func (r *rig) addBullet(side component.Side, x, y float64, damage int) types.EntityID {
	r.t.Helper()
	pool := r.world.PlayerBullets
	if side == component.SideEnemy {
		pool = r.world.EnemyBullets
	}
	id, b, ok := pool.Acquire()
	if !ok {
		r.t.Fatal("bullet pool exhausted")
	}
	*b = component.Bullet{Side: side, Pos: geom.V(x, y), Damage: damage, Radius: 4}
	return id
}
