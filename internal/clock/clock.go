// internal/clock/clock.go
package clock

import "time"

// Clock — источник времени симуляции. Время идёт только через Advance и
// только пока часы не на паузе, поэтому на паузе оно заморожено.
type Clock struct {
	now    time.Duration
	paused bool
}

func New() *Clock {
	return &Clock{}
}

// Now returns simulation time elapsed since the clock was created or reset.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance сдвигает время на dt, если нет паузы. Отрицательный шаг игнорируется.
func (c *Clock) Advance(dt time.Duration) {
	if c.paused || dt <= 0 {
		return
	}
	c.now += dt
}

func (c *Clock) Pause()         { c.paused = true }
func (c *Clock) Resume()        { c.paused = false }
func (c *Clock) IsPaused() bool { return c.paused }

// Reset сбрасывает часы в ноль и снимает паузу.
func (c *Clock) Reset() {
	c.now = 0
	c.paused = false
}

// FromSeconds converts a float frame delta into a Duration.
func FromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
