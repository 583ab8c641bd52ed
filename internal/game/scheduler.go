package game

import "time"

// TaskID identifies a scheduled task so it can be cancelled.
type TaskID uint64

type task struct {
	id TaskID
	at time.Duration
	fn func()
}

// Scheduler runs delayed callbacks on a simulated clock that only moves when
// Advance is called. Callbacks run on the caller's goroutine and always see
// current state when they fire.
type Scheduler struct {
	now   time.Duration
	next  TaskID
	tasks []task
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of tasks not yet fired.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// After schedules fn to run once d has elapsed on the scheduler clock.
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	s.next++
	s.tasks = append(s.tasks, task{id: s.next, at: s.now + d, fn: fn})
	return s.next
}

// Cancel drops a pending task. It returns false if the task already ran or
// never existed.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.tasks = s.tasks[:0]
}

// Advance moves the clock forward by dt and fires every task that falls due,
// earliest first. While a task runs the clock reads its fire time, so a task
// that schedules a follow-up measures the delay from its own deadline; the
// follow-up fires in this same call if it is already due.
func (s *Scheduler) Advance(dt time.Duration) {
	end := s.now + dt
	for {
		i := s.due(end)
		if i < 0 {
			break
		}
		t := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.now = t.at
		t.fn()
	}
	s.now = end
}

// due returns the index of the earliest task at or before end, ties going to
// the task scheduled first, or -1.
func (s *Scheduler) due(end time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.at > end {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.id < s.tasks[best].id) {
			best = i
		}
	}
	return best
}
