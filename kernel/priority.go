package main

// thread_set_priority changes the calling thread's priority. A no-op in
// MLFQ mode, where priority is entirely recomputed from nice/recent_cpu.
// In round-robin mode, if the thread currently holds
// donors and the new value would lower its effective priority, only
// priority_orig is touched so the donation isn't lost.
func thread_set_priority(newPriority int) {
	if mlfqEnabled {
		return
	}

	old := intr_disable()
	cur := thread_current()

	if cur.numLockDonors > 0 && newPriority <= cur.priority {
		cur.priorityOrig = newPriority
		intr_set_level(old)
		return
	}

	thread_assign_priority(cur, newPriority)
	intr_set_level(old)
}

func thread_get_priority() int {
	return thread_current().priority
}

// thread_assign_priority is the common path behind thread_set_priority
// (thread_set_nice and the MLFQ tick handler recompute and relocate on
// their own instead of calling it): update priority, update priority_orig in round-robin mode, then voluntarily
// yield if a strictly higher-priority peer is now ready. Interrupts must
// already be disabled by the caller.
func thread_assign_priority(t *thread, newPriority int) {
	kassert(newPriority >= PRI_MIN && newPriority <= PRI_MAX, "thread_assign_priority: out of range")

	oldPriority := t.priority
	t.priority = newPriority
	if !mlfqEnabled {
		t.priorityOrig = newPriority
	}

	if t.status == READY {
		if mq, ok := rdy.(*mlfqReadySet); ok {
			mq.relocate(t, oldPriority)
		}
	}

	checkSupersession(t, oldPriority)
}

// checkSupersession yields on behalf of t if, after a priority change from
// oldPriority to t's current priority, some other ready thread strictly
// outranks it. In round-robin mode this is the same single max-scan
// next_thread_to_run would do; in MLFQ mode it only needs to inspect the
// queues between oldPriority and the new priority.
func checkSupersession(t *thread, oldPriority int) {
	if t != thread_current() {
		return
	}
	if rdy.hasHigherThan(oldPriority, t.priority) {
		thread_yield()
	}
}

// thread_set_nice clamps n into [NICE_MIN, NICE_MAX], updates nice,
// recomputes priority from the MLFQ formula, and applies the same
// supersession check. MLFQ-only.
func thread_set_nice(n int) {
	if n < NICE_MIN {
		n = NICE_MIN
	}
	if n > NICE_MAX {
		n = NICE_MAX
	}

	old := intr_disable()
	cur := thread_current()
	cur.nice = n
	oldPriority := cur.priority
	cur.priority = mlfqRecomputePriority(cur.nice, cur.recentCPU)

	if cur.status == READY {
		if mq, ok := rdy.(*mlfqReadySet); ok {
			mq.relocate(cur, oldPriority)
		}
	}

	checkSupersession(cur, oldPriority)
	intr_set_level(old)
}

func thread_get_nice() int {
	return thread_current().nice
}

// thread_get_load_avg and thread_get_recent_cpu return 100x the
// corresponding fixed-point value, nearest-rounded, read under
// interrupts disabled.
func thread_get_load_avg() int {
	old := intr_disable()
	v := fpToIntRound(fpMulInt(loadAvg, 100))
	intr_set_level(old)
	return v
}

func thread_get_recent_cpu() int {
	old := intr_disable()
	v := fpToIntRound(fpMulInt(thread_current().recentCPU, 100))
	intr_set_level(old)
	return v
}

// mlfqRecomputePriority implements priority = clamp(PRI_MAX -
// recent_cpu/4 - 2*nice).
func mlfqRecomputePriority(nice int, recentCPU fixed) int {
	p := fpSubInt(fpSub(fpFromInt(PRI_MAX), fpDivInt(recentCPU, 4)), 2*nice)
	priority := fpToIntRound(p)
	if priority < PRI_MIN {
		priority = PRI_MIN
	}
	if priority > PRI_MAX {
		priority = PRI_MAX
	}
	return priority
}
