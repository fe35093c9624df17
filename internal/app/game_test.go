package app

import (
	"testing"
	"time"

	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/types"
	"go-star-shooter/internal/utils"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	settings := config.DefaultSettings()
	g := NewGame(settings, Options{Seed: seed})
	g.Start()
	return g
}

func TestStartOpensWave(t *testing.T) {
	g := newTestGame(t, 1)
	n := g.World.Enemies.Active()
	if n < 1 || n > config.MaxActiveEnemies {
		t.Errorf("Expected opening wave of 1..%d, got %d", config.MaxActiveEnemies, n)
	}
	if g.World.Run.PlayerHP != config.PlayerMaxHP {
		t.Errorf("Expected full hp, got %d", g.World.Run.PlayerHP)
	}
	if g.World.ActiveWeapon != defs.WeaponBlue {
		t.Errorf("Expected blue weapon active, got %v", g.World.ActiveWeapon)
	}
	if len(g.World.Stars.Stars) == 0 {
		t.Error("Expected a populated starfield")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 2)
	g.Step(frame, Input{Fire: true})
	ammo := g.World.ActiveSlot().Ammo
	now := g.Clock.Now()

	g.Pause()
	for i := 0; i < 100; i++ {
		g.Step(frame, Input{Fire: true, Left: true})
	}
	if g.Clock.Now() != now {
		t.Errorf("Expected clock frozen at %v, got %v", now, g.Clock.Now())
	}
	if g.World.ActiveSlot().Ammo != ammo {
		t.Errorf("Expected no shots while paused, got ammo %d (was %d)", g.World.ActiveSlot().Ammo, ammo)
	}

	g.Resume()
	g.Step(frame, Input{})
	if g.Clock.Now() != now+frame {
		t.Errorf("Expected clock to resume, got %v", g.Clock.Now())
	}
}

// Длинный прогон со случайным вводом: лимит врагов, патроны и исход не ломаются.
func TestRandomRunKeepsInvariants(t *testing.T) {
	totalKills := 0
	for seed := int64(1); seed <= 5; seed++ {
		g := newTestGame(t, seed)
		ended := 0
		g.EventDispatcher.Subscribe(event.GameEnded, event.ListenerFunc(func(event.Event) { ended++ }))
		rng := utils.NewPRNGService(seed * 31)

		var in Input
		for i := 0; i < 20000 && !g.Over(); i++ {
			if i%10 == 0 {
				in = Input{
					Left:       rng.Chance(0.3),
					Right:      rng.Chance(0.3),
					Up:         rng.Chance(0.2),
					Down:       rng.Chance(0.2),
					Fire:       rng.Chance(0.7),
					Reload:     rng.Chance(0.02),
					SwitchBlue: rng.Chance(0.05),
					SwitchRed:  rng.Chance(0.05),
				}
			}
			g.Step(frame, in)

			if n := g.World.Enemies.Active(); n > config.MaxActiveEnemies {
				t.Fatalf("seed %d frame %d: %d enemies over the cap", seed, i, n)
			}
			for k := range g.World.Weapons {
				slot := &g.World.Weapons[k]
				if slot.Ammo < 0 || slot.Ammo > slot.Def.AmmoMax {
					t.Fatalf("seed %d frame %d: %v ammo %d out of range", seed, i, slot.Kind(), slot.Ammo)
				}
			}
			if hp := g.World.Run.PlayerHP; hp < 0 || hp > config.PlayerMaxHP {
				t.Fatalf("seed %d frame %d: hp %d out of range", seed, i, hp)
			}
		}
		if !g.Over() {
			t.Errorf("seed %d: expected the run to end within 20000 frames", seed)
			continue
		}
		if ended != 1 {
			t.Errorf("seed %d: expected exactly one GameEnded, got %d", seed, ended)
		}
		if g.SpawnDirector.Running() {
			t.Errorf("seed %d: expected spawning stopped after the end", seed)
		}

		enemies := g.World.Enemies.Active()
		kills := g.World.Run.KillCount
		totalKills += kills
		for i := 0; i < 200; i++ {
			g.Step(frame, Input{Fire: true})
		}
		if g.World.Enemies.Active() > enemies || g.World.Run.KillCount != kills {
			t.Errorf("seed %d: expected a frozen scoreboard after the end", seed)
		}
	}
	if totalKills == 0 {
		t.Error("Expected random runs to record kills, got none")
	}
}

// Корабль держится под ближайшим врагом и стреляет: забег должен приносить убийства.
func TestAimedRunScoresKills(t *testing.T) {
	g := newTestGame(t, 7)
	for i := 0; i < 3000 && !g.Over() && g.World.Run.KillCount == 0; i++ {
		in := Input{Fire: true}
		target, found := 0.0, false
		lowest := -1e9
		g.World.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
			if e.Pos.Y > lowest {
				lowest, target, found = e.Pos.Y, e.Pos.X, true
			}
		})
		if found {
			dx := target - g.World.Player.Pos.X
			in.Left = dx < -4
			in.Right = dx > 4
		}
		g.Step(frame, in)
	}
	if g.World.Run.KillCount == 0 {
		t.Errorf("Expected an aimed run to score a kill, got none (over=%v)", g.Over())
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame(t, 3)
	g.RunSystem.DamagePlayer(config.PlayerMaxHP)
	if !g.Over() || g.World.Run.Result != component.ResultDefeat {
		t.Fatal("Expected defeat")
	}
	g.Restart()
	if g.Over() {
		t.Error("Expected a fresh run after restart")
	}
	if g.Clock.Now() != 0 {
		t.Errorf("Expected clock reset, got %v", g.Clock.Now())
	}
	if !g.SpawnDirector.Running() {
		t.Error("Expected spawn timer re-armed")
	}
	if g.World.Run.PlayerHP != config.PlayerMaxHP || g.World.Run.KillCount != 0 {
		t.Errorf("Expected full hp and zero kills, got %d and %d", g.World.Run.PlayerHP, g.World.Run.KillCount)
	}
}

func TestBeamFollowsTrigger(t *testing.T) {
	g := newTestGame(t, 4)
	g.Step(frame, Input{SwitchRed: true})
	g.Step(frame, Input{Fire: true})
	if !g.World.Beam.Active {
		t.Fatal("Expected beam on while the trigger is held")
	}
	g.Step(frame, Input{})
	if g.World.Beam.Active {
		t.Error("Expected beam off when the trigger is released")
	}
	g.Step(frame, Input{Fire: true})
	if !g.World.Beam.Active {
		t.Error("Expected beam back on inside the same charge window")
	}
}
