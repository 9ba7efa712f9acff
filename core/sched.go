package core

// MaxTasks is the task table capacity. Slots are claimed at startup and the
// table rejects registration once full.
const MaxTasks = 8

// TaskFunc is a periodic task handler. It receives the timebase value that
// made it due and must run to completion; there is no preemption.
type TaskFunc func(now uint32)

// Task is one slot in the scheduler table: a handler, its period in ticks,
// and the tick at which it last finished running.
type Task struct {
	handler TaskFunc
	period  uint32
	lastRun uint32
	used    bool
}

// Scheduler is a fixed-capacity table of periodic tasks dispatched
// cooperatively from the main loop. The zero value is ready to use.
type Scheduler struct {
	tasks [MaxTasks]Task
}

// Create claims the first free slot for handler with the given period in
// ticks and returns a stable handle to it, or nil when the table is full or
// handler is nil. The first run becomes due period ticks from now.
func (s *Scheduler) Create(handler TaskFunc, periodTicks uint32) *Task {
	if handler == nil {
		return nil
	}
	for i := range s.tasks {
		t := &s.tasks[i]
		if !t.used {
			t.handler = handler
			t.period = periodTicks
			t.lastRun = GetTicks()
			t.used = true
			return t
		}
	}
	return nil
}

// Delete clears a slot immediately. The handle must have come from Create;
// a nil handle is ignored.
func (s *Scheduler) Delete(t *Task) {
	if t != nil {
		*t = Task{}
	}
}

// ClearAll empties every slot.
func (s *Scheduler) ClearAll() {
	for i := range s.tasks {
		s.tasks[i] = Task{}
	}
}

// RunOnce makes one dispatch pass: every occupied slot whose period has
// elapsed (wrap-safe) runs synchronously to completion. lastRun is sampled
// after the handler returns, so a handler slower than its own period does
// not re-trigger immediately on the next pass. Call repeatedly from the
// main loop.
func (s *Scheduler) RunOnce() {
	for i := range s.tasks {
		t := &s.tasks[i]
		if !t.used {
			continue
		}
		now := GetTicks()
		if Elapsed(now, t.lastRun) >= t.period {
			t.handler(now)
			t.lastRun = GetTicks()
		}
	}
}

// Active returns the number of occupied slots.
func (s *Scheduler) Active() int {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].used {
			n++
		}
	}
	return n
}
