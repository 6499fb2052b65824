package main

import _ "unsafe"

// Context is the register-save area switch_threads reads from and writes
// into: callee-saved registers plus the gp/tp slots this calling
// convention needs.
type Context struct {
	ra uintptr
	sp uintptr

	s0  uintptr
	s1  uintptr
	s2  uintptr
	s3  uintptr
	s4  uintptr
	s5  uintptr
	s6  uintptr
	s7  uintptr
	s8  uintptr
	s9  uintptr
	s10 uintptr
	s11 uintptr

	gp uintptr
	tp uintptr
}

// switch_threads (extern_hw.go / extern_fake.go) takes the two TCBs
// rather than two bare Contexts: the assembly on the far side finds
// context within thread by a linker-computed offset, so the Go side
// only needs to pass whole thread pointers. It saves the caller's
// registers into cur's context and loads next's into the live register
// file, and returns whichever thread had been running immediately
// before this particular resumption — which, because other threads may
// have switched in and out in between, is not necessarily "cur" from
// this call's own stack frame.
//
// GetThreadStubAddr hands back the address of threadStub (thread.go) so
// a freshly created thread's context.ra can be pointed at it directly.

// schedule selects the next thread to run and, if it differs from the
// caller, switches the CPU to it. Precondition: interrupts disabled,
// current thread's status already updated away from RUNNING.
func schedule() {
	cur := thread_current()
	kassert(!intr_get_level(), "schedule: interrupts must be disabled")
	kassert(cur.status != RUNNING, "schedule: current thread still RUNNING")

	next := next_thread_to_run()
	kassert(next.magic == threadMagic, "schedule: next is not a live TCB")

	var prev *thread
	if next != cur {
		prev = switch_threads(cur, next)
		g_current = next
	}

	thread_schedule_tail(prev)
}

// next_thread_to_run pops the highest-priority ready thread, or falls
// back to the idle thread if the ready set is empty. The dual-mode
// branch lives inside rdy (readyset.go) rather than here.
func next_thread_to_run() *thread {
	if t := rdy.popHighest(); t != nil {
		return t
	}
	kassert(idleThread != nil, "next_thread_to_run: no idle thread")
	return idleThread
}

// thread_schedule_tail runs on the successor's stack immediately after
// switch_threads returns. It finishes the bookkeeping the switch itself
// can't do: marking the new current thread RUNNING, resetting the
// preemption tick counter, restoring a donation-free thread's base
// priority, and freeing a dead predecessor's page. Factored out here
// because schedule() can switch threads from five call sites (block,
// unblock, yield, wait, exit) rather than a single scheduler loop.
func thread_schedule_tail(prev *thread) {
	cur := thread_current()
	cur.status = RUNNING
	g_current = cur
	threadTicks = 0

	if cur.userContext != nil {
		activateAddressSpace(cur.userContext)
	}

	if !mlfqEnabled && cur.numLockDonors == 0 {
		cur.priority = cur.priorityOrig
	}

	if prev != nil && prev.status == DYING && prev != initialThread {
		kfree(prev.page)
	}
}
