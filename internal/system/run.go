// internal/system/run.go
package system

import (
	"log"

	"go-star-shooter/internal/clock"
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/config"
	"go-star-shooter/internal/entity"
	"go-star-shooter/internal/event"
)

// RunSystem ведёт счёт и решает, когда забег окончен.
type RunSystem struct {
	world           *entity.World
	clock           *clock.Clock
	eventDispatcher *event.Dispatcher
	onEnd           []func()
}

func NewRunSystem(world *entity.World, clk *clock.Clock, eventDispatcher *event.Dispatcher) *RunSystem {
	s := &RunSystem{
		world:           world,
		clock:           clk,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEnd registers a hook run once when the game ends, before GameEnded is sent.
func (s *RunSystem) OnEnd(fn func()) {
	s.onEnd = append(s.onEnd, fn)
}

// Start начинает новый забег с текущего времени часов.
func (s *RunSystem) Start() {
	s.world.Run = component.RunState{
		PlayerHP:    config.PlayerMaxHP,
		PlayerMaxHP: config.PlayerMaxHP,
		StartedAt:   s.clock.Now(),
	}
}

func (s *RunSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled || s.world.Run.GameOver {
		return
	}
	s.world.Run.KillCount++
	s.Check()
}

// DamagePlayer снимает здоровье игрока, не ниже нуля. На нуле забег заканчивается.
func (s *RunSystem) DamagePlayer(amount int) {
	run := &s.world.Run
	if run.GameOver || amount <= 0 {
		return
	}
	run.PlayerHP -= amount
	if run.PlayerHP < 0 {
		run.PlayerHP = 0
	}
	s.world.Player.FlashUntil = s.clock.Now() + config.ExplosionDuration
	s.eventDispatcher.Emit(event.PlayerDamaged, event.PlayerDamagedData{Amount: amount, HP: run.PlayerHP})
	if run.PlayerHP == 0 {
		s.EndGame(component.ResultDefeat)
	}
}

// HealPlayer лечит игрока до максимума.
func (s *RunSystem) HealPlayer(amount int) {
	run := &s.world.Run
	if run.GameOver {
		return
	}
	run.PlayerHP += amount
	if run.PlayerHP > run.PlayerMaxHP {
		run.PlayerHP = run.PlayerMaxHP
	}
}

// Check evaluates win/loss conditions and ends the run when one is met.
func (s *RunSystem) Check() component.RunResult {
	run := &s.world.Run
	if run.GameOver {
		return run.Result
	}
	now := s.clock.Now()
	switch {
	case run.PlayerHP <= 0:
		s.EndGame(component.ResultDefeat)
	case now-run.StartedAt >= config.SurvivalGoal || run.KillCount >= config.KillGoal:
		s.EndGame(component.ResultVictory)
	}
	return run.Result
}

// EndGame завершает забег. Действует только первый вызов; возвращает true,
// если игру закончил именно он.
func (s *RunSystem) EndGame(result component.RunResult) bool {
	run := &s.world.Run
	if run.GameOver {
		return false
	}
	run.GameOver = true
	run.Result = result
	run.EndedAt = s.clock.Now()
	for _, fn := range s.onEnd {
		fn()
	}
	log.Printf("Run ended: %s, kills %d, survived %s", result, run.KillCount, run.Survived(run.EndedAt))
	s.eventDispatcher.Emit(event.GameEnded, event.GameEndedData{Result: result, Kills: run.KillCount})
	return true
}
