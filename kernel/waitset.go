package main

// waitList holds BLOCKED threads sleeping with a nonzero ticksWait
// countdown. It shares the same tlist shape — and the same
// readyPrev/readyNext/readyOwner link fields on thread — as the ready
// set, since a thread is never in both at once.
var waitList tlist

func waitSetInsert(t *thread) {
	waitList.pushBack(t)
}

// waitSetWakeFirst decrements sleepers' countdowns in list order until one
// reaches zero, wakes that one, and leaves the sleepers after it untouched
// for this tick, a deliberate one-wakeup-per-tick simplification (see DESIGN.md Open Question Decision 2). Returns the
// woken thread, or nil.
func waitSetWakeFirst() *thread {
	var woken *thread
	waitList.forEach(func(t *thread) {
		if woken != nil {
			return
		}
		t.ticksWait--
		if t.ticksWait <= 0 {
			waitList.remove(t)
			readyInsert(t)
			t.status = READY
			woken = t
		}
	})
	return woken
}
