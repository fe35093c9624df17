// internal/component/game_state.go
package component

import "time"

// RunResult — итог забега.
type RunResult int

const (
	ResultNone RunResult = iota
	ResultVictory
	ResultDefeat
)

func (r RunResult) String() string {
	switch r {
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	}
	return "none"
}

// RunState — счёт забега. GameOver фиксируется первым EndGame.
type RunState struct {
	PlayerHP    int
	PlayerMaxHP int
	KillCount   int
	StartedAt   time.Duration
	EndedAt     time.Duration
	GameOver    bool
	Result      RunResult
}

// Survived returns how long the run has lasted at now.
func (r *RunState) Survived(now time.Duration) time.Duration {
	if r.GameOver {
		return r.EndedAt - r.StartedAt
	}
	return now - r.StartedAt
}
