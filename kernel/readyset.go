package main

// readySet is the mode-dependent ready-set policy, modeled as a
// capability rather than a branch at every call site: insert
// a READY thread, pop the highest-priority one, and answer "is there
// something ready that outranks priority p" for the supersession checks
// in priority.go. Exactly two implementations exist, chosen once at boot
// by thread_init depending on -o mlfqs.
type readySet interface {
	insert(t *thread)
	popHighest() *thread
	hasHigherThan(oldPriority, newPriority int) bool
	empty() bool
}

// rdy is the active ready set. Set once by thread_init and never
// reassigned afterwards.
var rdy readySet

// mlfqEnabled mirrors which concrete readySet is installed; kept as its
// own variable (rather than a type switch on rdy everywhere) because
// several non-ready-set decisions key off it too: init_thread's priority
// derivation, thread_schedule_tail's priority_orig restore, and
// thread_set_priority's no-op.
var mlfqEnabled = false

// roundRobinReadySet is a single unordered list, selection scans for the
// thread of maximum priority with FIFO tiebreak among equals (earliest
// inserted wins). Grounded in the original kernel's single ready_list.
type roundRobinReadySet struct {
	list tlist
}

func (r *roundRobinReadySet) insert(t *thread) {
	r.list.pushBack(t)
}

func (r *roundRobinReadySet) popHighest() *thread {
	best := r.findHighest()
	if best == nil {
		return nil
	}
	r.list.remove(best)
	return best
}

// findHighest performs the linear max-priority scan without removing;
// FIFO tiebreak falls out naturally because the scan keeps the first
// thread it sees at the current best priority.
func (r *roundRobinReadySet) findHighest() *thread {
	var best *thread
	for t := r.list.head; t != nil; t = t.readyNext {
		if best == nil || t.priority > best.priority {
			best = t
		}
	}
	return best
}

// hasHigherThan ignores oldPriority: round-robin mode has no per-priority
// bands to bound the scan against, so it always does a single max-scan.
func (r *roundRobinReadySet) hasHigherThan(oldPriority, newPriority int) bool {
	best := r.findHighest()
	return best != nil && best.priority > newPriority
}

func (r *roundRobinReadySet) empty() bool {
	return r.list.empty()
}

// age bumps every ready thread's priority by one, capped at PRI_MAX —
// round-robin mode only, it has no MLFQ analogue. Lives here rather than
// behind the readySet interface; tick.go reaches it through a type
// assertion on rdy.
func (r *roundRobinReadySet) age() {
	r.list.forEach(func(t *thread) {
		if t.priority < PRI_MAX {
			t.priority++
		}
	})
}

// mlfqReadySet is an array of NQ FIFOs, one per priority level. Selection
// picks the head of the highest non-empty queue.
type mlfqReadySet struct {
	queues [NQ]tlist
}

func (m *mlfqReadySet) insert(t *thread) {
	kassert(t.priority >= PRI_MIN && t.priority <= PRI_MAX, "mlfqReadySet: priority out of range")
	m.queues[t.priority].pushBack(t)
}

func (m *mlfqReadySet) popHighest() *thread {
	for p := PRI_MAX; p >= PRI_MIN; p-- {
		if t := m.queues[p].popFront(); t != nil {
			return t
		}
	}
	return nil
}

// hasHigherThan exploits the invariant that, just before this priority
// change, no ready thread outranked oldPriority (otherwise an earlier
// supersession check would already have yielded). Raising or holding
// priority steady therefore can never expose a new supersession, so only
// a drop (newPriority < oldPriority) needs inspecting, and only the band
// strictly above newPriority up through oldPriority — anything above
// oldPriority is already known empty.
func (m *mlfqReadySet) hasHigherThan(oldPriority, newPriority int) bool {
	if newPriority >= oldPriority {
		return false
	}
	for q := oldPriority; q > newPriority; q-- {
		if !m.queues[q].empty() {
			return true
		}
	}
	return false
}

func (m *mlfqReadySet) empty() bool {
	for p := PRI_MIN; p <= PRI_MAX; p++ {
		if !m.queues[p].empty() {
			return false
		}
	}
	return true
}

// relocate moves a READY thread from the queue for its old priority into
// the queue for its current priority: a READY thread always resides in
// the FIFO matching its current priority, so any priority change while
// READY must relocate it. t.priority must already hold the new value;
// oldPriority is where it is presently linked.
func (m *mlfqReadySet) relocate(t *thread, oldPriority int) {
	if t.priority == oldPriority {
		return
	}
	m.queues[oldPriority].remove(t)
	m.queues[t.priority].pushBack(t)
}
