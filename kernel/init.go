package main

import "unsafe"

// intr_enable_and_halt atomically re-enables interrupts and halts the
// hart until the next one arrives — the RISC-V "enable then wfi" sequence
// has to be one indivisible unit or a timer interrupt could fire in the
// gap and be missed until the next one, so this stays a linknamed asm
// primitive rather than two separate Go statements.
//
//go:linkname intr_enable_and_halt intr_enable_and_halt
func intr_enable_and_halt()

// mlfqsFlag is set by parsing the kernel command line's "-o mlfqs" option
// before thread_init runs. It is the first command-line option this
// kernel understands.
var mlfqsFlag = false

// idleReady and starterThread together stand in for a startup semaphore
// handed by the bootstrap thread to the idle thread. Rather than pull in
// an externally-owned semaphore primitive for a single one-shot handoff,
// thread_start parks itself directly on thread_block/thread_unblock —
// the two operations the scheduler already exposes for exactly this
// purpose.
var idleReady = false
var starterThread *thread

// thread_init bootstraps the scheduler from the thread that is already
// running (the boot code in main.go's KMain) before any thread has been
// created. It must be called with interrupts off and before the
// allocator sees any scheduler-owned page: it turns the currently
// executing context into the initial thread and picks a ready-set
// policy.
func thread_init() {
	kassert(!intr_get_level(), "thread_init: interrupts must be disabled")

	initlock(&tidLock)

	if mlfqsFlag {
		mlfqEnabled = true
		rdy = &mlfqReadySet{}
	} else {
		mlfqEnabled = false
		rdy = &roundRobinReadySet{}
	}

	t := &thread{}
	init_thread(t, "main", PRI_DEFAULT)
	t.status = RUNNING
	t.tid = allocate_tid_unlocked()

	initialThread = t
	g_current = t
}

// allocate_tid_unlocked hands tid 1 to the initial thread without going
// through the tid_lock spinlock: thread_init runs before interrupts have
// ever been enabled, at a point no other thread could contend for the
// lock, and allocate_tid's own acquire()/release() would otherwise flip
// interrupts on transiently (spinlock.go's release calls intr_on())
// before thread_init's caller is ready for that.
func allocate_tid_unlocked() int {
	kassert(nextTid == 1, "allocate_tid_unlocked: initial thread must get tid 1")
	nextTid = 2
	return 1
}

// thread_start creates the idle thread, enables interrupts, and waits for
// the idle thread to report itself ready before returning.
func thread_start() {
	thread_create("idle", PRI_MIN, idleThreadMain, nil)

	intr_set_level(true)

	old := intr_disable()
	if !idleReady {
		starterThread = thread_current()
		thread_block()
	}
	intr_set_level(old)
}

// idleThreadMain is the idle thread's body: record itself as idleThread,
// release the thread_start handoff, then forever disable interrupts,
// block, and atomically re-enable interrupts while halting until the
// next one arrives. The idle thread is created like any other thread
// but is removed from the roster immediately, since it belongs to no
// list and is only ever returned as the empty-ready fallback.
func idleThreadMain(aux unsafe.Pointer) {
	self := thread_current()
	self.isIdle = true
	idleThread = self

	old := intr_disable()
	allListRemove(self)
	idleReady = true
	if starterThread != nil {
		thread_unblock(starterThread)
		starterThread = nil
	}
	intr_set_level(old)

	for {
		intr_disable()
		thread_block()
		intr_enable_and_halt()
	}
}
