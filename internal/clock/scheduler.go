// internal/clock/scheduler.go
package clock

import "time"

// TimerID — идентификатор таймера. Ноль никогда не выдаётся.
type TimerID uint64

type entry struct {
	id       TimerID
	due      time.Duration
	interval time.Duration // 0 для разового
	seq      uint64
	fn       func()
}

// Scheduler вызывает колбэки, когда часы доходят до их срока. Опрашивается
// раз в кадр из игрового цикла, колбэки выполняются в той же горутине.
type Scheduler struct {
	clock   *Clock
	entries []*entry
	nextID  TimerID
	seq     uint64
}

// NewScheduler создаёт планировщик, работающий от часов c.
func NewScheduler(c *Clock) *Scheduler {
	return &Scheduler{clock: c}
}

// After вызывает fn один раз через delay.
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	return s.add(delay, 0, fn)
}

// Every вызывает fn каждые interval, впервые в now+interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	s.entries = append(s.entries, &entry{
		id:       s.nextID,
		due:      s.clock.Now() + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	})
	return s.nextID
}

// Cancel снимает таймер. Для неизвестных и отработавших id возвращает false.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether id is still scheduled.
func (s *Scheduler) Pending(id TimerID) bool {
	_, ok := s.Due(id)
	return ok
}

// Due returns when id will next fire.
func (s *Scheduler) Due(id TimerID) (time.Duration, bool) {
	for _, e := range s.entries {
		if e.id == id {
			return e.due, true
		}
	}
	return 0, false
}

// Poll запускает все таймеры, чей срок наступил: сначала ранние, при равных
// сроках в порядке постановки. Повторяющиеся перевзводятся от прошлого
// срока, чтобы не накапливать дрейф.
func (s *Scheduler) Poll() {
	now := s.clock.Now()
	for {
		idx := s.next(now)
		if idx < 0 {
			return
		}
		e := s.entries[idx]
		if e.interval > 0 {
			e.due += e.interval
			s.seq++
			e.seq = s.seq
		} else {
			s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		}
		e.fn()
	}
}

func (s *Scheduler) next(now time.Duration) int {
	best := -1
	for i, e := range s.entries {
		if e.due > now {
			continue
		}
		if best < 0 || e.due < s.entries[best].due ||
			(e.due == s.entries[best].due && e.seq < s.entries[best].seq) {
			best = i
		}
	}
	return best
}

// Len — число ожидающих таймеров.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Clear снимает все таймеры.
func (s *Scheduler) Clear() {
	s.entries = s.entries[:0]
}
