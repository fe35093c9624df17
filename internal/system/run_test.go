package system

import (
	"testing"
	"time"

	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/event"
)

func TestEndGameOnlyOnce(t *testing.T) {
	r := newRig(t, nil, 2)
	r.spawn.Start()
	r.weapons.Fire()
	r.weapons.Reload()
	hooks := 0
	r.run.OnEnd(func() { hooks++ })

	if !r.run.EndGame(component.ResultVictory) {
		t.Fatal("Expected first EndGame to end the run")
	}
	if r.run.EndGame(component.ResultDefeat) {
		t.Error("Expected second EndGame to be ignored")
	}
	if r.world.Run.Result != component.ResultVictory {
		t.Errorf("Expected result to stay victory, got %v", r.world.Run.Result)
	}
	if hooks != 1 || r.events[event.GameEnded] != 1 {
		t.Errorf("Expected hooks and GameEnded once, got %d and %d", hooks, r.events[event.GameEnded])
	}
	if r.scheduler.Len() != 0 {
		t.Errorf("Expected all timers cancelled, got %d", r.scheduler.Len())
	}
	if r.world.ActiveSlot().Reloading {
		t.Error("Expected reload cancelled")
	}
}

func TestVictoryByKills(t *testing.T) {
	r := newRig(t, nil, 2)
	for i := 0; i < config.KillGoal; i++ {
		r.run.OnEvent(event.Event{Type: event.EnemyKilled})
	}
	if r.world.Run.Result != component.ResultVictory {
		t.Errorf("Expected victory at %d kills, got %v", config.KillGoal, r.world.Run.Result)
	}
	r.run.OnEvent(event.Event{Type: event.EnemyKilled})
	if r.world.Run.KillCount != config.KillGoal {
		t.Errorf("Expected kills frozen at %d, got %d", config.KillGoal, r.world.Run.KillCount)
	}
}

func TestVictoryBySurvival(t *testing.T) {
	r := newRig(t, nil, 2)
	r.clock.Advance(config.SurvivalGoal - time.Millisecond)
	if r.run.Check() != component.ResultNone {
		t.Fatal("Expected run still going just before the goal")
	}
	r.clock.Advance(time.Millisecond)
	if r.run.Check() != component.ResultVictory {
		t.Errorf("Expected victory at %v, got %v", config.SurvivalGoal, r.world.Run.Result)
	}
}

func TestDefeatClampsHP(t *testing.T) {
	r := newRig(t, nil, 2)
	r.run.DamagePlayer(9)
	if r.world.Run.PlayerHP != 0 {
		t.Errorf("Expected hp clamped at 0, got %d", r.world.Run.PlayerHP)
	}
	if r.world.Run.Result != component.ResultDefeat {
		t.Errorf("Expected defeat, got %v", r.world.Run.Result)
	}
	r.run.HealPlayer(3)
	if r.world.Run.PlayerHP != 0 {
		t.Errorf("Expected no healing after the run ended, got %d", r.world.Run.PlayerHP)
	}
}

// Поражение и 25-е убийство в одном кадре: побеждает то, что случилось первым.
func TestDefeatBeforeLastKillStaysDefeat(t *testing.T) {
	r := newRig(t, nil, 2)
	r.world.Run.KillCount = config.KillGoal - 1
	r.run.DamagePlayer(config.PlayerMaxHP)
	r.run.OnEvent(event.Event{Type: event.EnemyKilled})
	if r.world.Run.Result != component.ResultDefeat {
		t.Errorf("Expected defeat to stand, got %v", r.world.Run.Result)
	}
}
