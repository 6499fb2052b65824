package main

import "unsafe"

// TimerFreq is the timer device's interrupt rate, in Hz — normally
// supplied by the timer collaborator, defaulted to the typical 100 Hz
// pending that device actually being wired up.
var TimerFreq int64 = 100

var (
	idleTicks   int64
	kernelTicks int64
	userTicks   int64
	totalTicks  int64
	threadTicks int64

	loadAvg fixed
)

// thread_tick is invoked from the timer IRQ (Kerneltrap's timer branch,
// trap.go) with interrupts disabled by hardware. It must not block or
// allocate — it only touches scheduler state already resident in memory.
func thread_tick(ticks int64) {
	cur := thread_current()

	switch {
	case cur.isIdle:
		idleTicks++
	case cur.userContext != nil:
		userTicks++
	default:
		kernelTicks++
	}

	preempt := false

	if mlfqEnabled {
		preempt = mlfqAccounting(ticks, cur) || preempt
	} else {
		totalTicks++
		if totalTicks%(TIME_SLICE*4) == 0 {
			if rr, ok := rdy.(*roundRobinReadySet); ok {
				rr.age()
			}
		}
	}

	if woken := waitSetWakeFirst(); woken != nil && woken.priority > cur.priority {
		preempt = true
	}

	threadTicks++
	if threadTicks >= TIME_SLICE || preempt {
		intr_yield_on_return()
	}
}

// mlfqAccounting performs the per-tick recent_cpu bump, the
// once-per-second load average update and recent_cpu decay, and the
// every-fourth-tick priority recompute across the whole roster. It
// returns true if any relocated thread ended up outranking cur.
func mlfqAccounting(ticks int64, cur *thread) bool {
	if !cur.isIdle {
		cur.recentCPU = fpAddInt(cur.recentCPU, 1)
	}

	if ticks%4 != 0 {
		return false
	}

	onSecondBoundary := ticks%TimerFreq == 0
	if onSecondBoundary {
		loadAvg = computeLoadAvg()
	}

	preempt := false
	thread_foreach(func(t *thread, _ unsafe.Pointer) {
		if t.status == NASCENT {
			return
		}

		oldPriority := t.priority

		if onSecondBoundary {
			t.recentCPU = recalcRecentCPU(t.recentCPU, t.nice)
		}
		t.priority = mlfqRecomputePriority(t.nice, t.recentCPU)

		if t.status == READY && t.priority != oldPriority {
			if mq, ok := rdy.(*mlfqReadySet); ok {
				mq.relocate(t, oldPriority)
			}
			if t.priority > cur.priority {
				preempt = true
			}
		}
	}, nil)

	return preempt
}

// computeLoadAvg implements load_avg = (59/60)*load_avg + (1/60)*R,
// where R is the number of READY+RUNNING threads on the roster
// (including the running thread, excluding idle).
func computeLoadAvg() fixed {
	r := 0
	thread_foreach(func(t *thread, _ unsafe.Pointer) {
		if t.isIdle {
			return
		}
		if t.status == READY || t.status == RUNNING {
			r++
		}
	}, nil)

	term1 := fpMul(fpDivInt(fpFromInt(59), 60), loadAvg)
	term2 := fpDivInt(fpFromInt(r), 60)
	return fpAdd(term1, term2)
}

// recalcRecentCPU implements recent_cpu = (2*load_avg /
// (2*load_avg+1)) * recent_cpu + nice.
func recalcRecentCPU(recentCPU fixed, nice int) fixed {
	twoLA := fpMulInt(loadAvg, 2)
	coeff := fpDiv(twoLA, fpAddInt(twoLA, 1))
	return fpAddInt(fpMul(coeff, recentCPU), nice)
}
