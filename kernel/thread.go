package main

import "unsafe"

const (
	PRI_MIN     = 0
	PRI_DEFAULT = 31
	PRI_MAX     = 63
	NQ          = PRI_MAX + 1

	NICE_MIN     = -20
	NICE_DEFAULT = 0
	NICE_MAX     = 20

	TIME_SLICE = 4 // ticks

	TID_ERROR = -1

	threadNameMax = 20

	threadMagic = uint32(0x8f14e45f)
)

type threadStatus int

const (
	NASCENT threadStatus = iota
	READY
	RUNNING
	BLOCKED
	DYING
)

// addressSpace stands in for an optional userland address-space handle.
// thread_create never populates it on this kernel, which has no
// user-process support yet; the field and the tick-handler check against
// it (tick.go) exist so that support can be wired in later without
// touching the scheduler's shape again.
type addressSpace struct{}

// thread is the per-thread control block, allocated individually, one
// page per thread, the same way kalloc.go hands pages to anyone who asks.
type thread struct {
	magic uint32
	name  string
	tid   int
	status threadStatus

	priority     int
	priorityOrig int
	numLockDonors int

	nice      int
	recentCPU fixed

	ticksWait int64

	stack   uintptr
	context Context

	parent *thread
	fn     func(aux unsafe.Pointer)
	aux    unsafe.Pointer

	userContext *addressSpace

	page uintptr // base of this thread's allocated stack page

	isIdle bool

	// ready-set / wait-set membership token (mutually exclusive)
	readyPrev, readyNext *thread
	readyOwner            *tlist

	// global-roster membership token
	allPrev, allNext *thread
}

var allList tlist
var idleThread *thread
var initialThread *thread

// g_current stands in for recovering the TCB by page-aligning the stack
// pointer downward to the base of its stack page. There is no linknamed
// read of the hart's sp register yet, so the scheduler maintains this
// pointer itself across every switch. TODO: once r_sp() exists, recover
// the TCB from it instead and drop this variable.
var g_current *thread

func currentThreadUnchecked() *thread {
	return g_current
}

// thread_current returns the running thread, asserting it is a live TCB.
func thread_current() *thread {
	t := g_current
	kassert(t != nil, "thread_current: no current thread")
	kassert(t.magic == threadMagic, "thread_current: stack overflow (bad magic)")
	return t
}

func thread_tid() int {
	return thread_current().tid
}

func thread_name() string {
	return thread_current().name
}

func allListPush(t *thread) {
	t.allPrev = allList.tail
	t.allNext = nil
	if allList.tail != nil {
		allList.tail.allNext = t
	} else {
		allList.head = t
	}
	allList.tail = t
	allList.len++
}

func allListRemove(t *thread) {
	if t.allPrev != nil {
		t.allPrev.allNext = t.allNext
	} else {
		allList.head = t.allNext
	}
	if t.allNext != nil {
		t.allNext.allPrev = t.allPrev
	} else {
		allList.tail = t.allPrev
	}
	t.allPrev = nil
	t.allNext = nil
	allList.len--
}

// thread_foreach visits every roster member. Interrupts must already be
// disabled.
func thread_foreach(fn func(t *thread, aux unsafe.Pointer), aux unsafe.Pointer) {
	kassert(!intr_get_level(), "thread_foreach: interrupts must be disabled")
	for t := allList.head; t != nil; t = t.allNext {
		fn(t, aux)
	}
}

// init_thread fills in a freshly page-allocated TCB. thread_create calls
// it once per dynamically allocated thread, before page/stack are known,
// so it leaves those two fields for the caller to set afterward.
func init_thread(t *thread, name string, priority int) {
	*t = thread{}
	t.status = NASCENT
	t.name = boundedName(name)
	t.magic = threadMagic

	if name == "main" {
		t.parent = t
	} else {
		t.parent = currentThreadUnchecked()
	}

	t.priorityOrig = priority

	if mlfqEnabled {
		switch name {
		case "main":
			t.nice = NICE_DEFAULT
			t.recentCPU = 0
			t.priority = mlfqRecomputePriority(t.nice, t.recentCPU)
		case "idle":
			t.priority = priority
		default:
			cur := currentThreadUnchecked()
			t.nice = cur.nice
			t.recentCPU = cur.recentCPU
			t.priority = mlfqRecomputePriority(t.nice, t.recentCPU)
		}
	} else {
		t.priority = priority
	}

	old := intr_disable()
	allListPush(t)
	intr_set_level(old)
}

// thread_create allocates a page for the new thread, initializes its TCB,
// assigns a tid, arranges for it to start executing fn(aux), and unblocks
// it.
func thread_create(name string, priority int, fn func(aux unsafe.Pointer), aux unsafe.Pointer) int {
	page := kalloc()
	if page == 0 {
		return TID_ERROR
	}
	memset(page, 0, uint(PGSIZE))

	t := (*thread)(unsafe.Pointer(page))
	init_thread(t, name, priority)
	t.page = page
	t.stack = page + PGSIZE
	t.tid = allocate_tid()
	t.fn = fn
	t.aux = aux

	// switch_threads restores directly into threadStub via context.ra
	// rather than manually popping bytes off a byte stack.
	t.context = Context{
		ra: GetThreadStubAddr(),
		sp: t.stack,
	}

	thread_unblock(t)
	return t.tid
}

// threadStub is where every new thread's context switch lands. It enables
// interrupts, runs the thread's function, and on return always calls
// thread_exit, guaranteeing no kernel thread escapes cleanup.
//
//export ThreadStub
func threadStub() {
	intr_set_level(true)
	t := thread_current()
	if t.fn != nil {
		t.fn(t.aux)
	}
	thread_exit()
	kassert(false, "threadStub: thread_exit returned")
}

// thread_block puts the current thread to sleep indefinitely; only an
// explicit thread_unblock wakes it. Interrupts must already be disabled.
func thread_block() {
	kassert(!intr_get_level(), "thread_block: interrupts must be disabled")
	cur := thread_current()
	cur.status = BLOCKED
	schedule()
}

// thread_unblock makes a blocked or nascent thread ready to run, and, if
// it strictly outranks the caller and the caller is not servicing the
// timer IRQ, yields to it immediately.
func thread_unblock(t *thread) {
	old := intr_disable()

	kassert(t.status == BLOCKED || t.status == NASCENT, "thread_unblock: bad status")
	readyInsert(t)
	t.status = READY

	if !intr_context() {
		cur := thread_current()
		if t != cur && t.priority > cur.priority {
			// The idle thread belongs on no list, ever. It only comes
			// back as next_thread_to_run's empty-ready fallback, which
			// picks it up by identity rather than by status, so parking
			// it as BLOCKED (the same status its own loop parks itself
			// under before halting) is enough to let schedule() switch
			// away without readyInsert-ing it.
			if cur.isIdle {
				cur.status = BLOCKED
			} else {
				readyInsert(cur)
				cur.status = READY
			}
			schedule()
		}
	}

	intr_set_level(old)
}

// thread_yield gives up the CPU voluntarily and re-enters the ready set.
func thread_yield() {
	kassert(!intr_get_level(), "thread_yield: interrupts must be disabled")
	cur := thread_current()
	if !cur.isIdle {
		readyInsert(cur)
		cur.status = READY
	}
	schedule()
}

// thread_wait sleeps the current thread for the given number of future
// ticks. A zero-tick wait may be observed as already expired on the very
// next tick; that is not an error.
func thread_wait(ticks int64) {
	old := intr_disable()
	cur := thread_current()
	cur.ticksWait = ticks
	cur.status = BLOCKED
	waitSetInsert(cur)
	schedule()
	intr_set_level(old)
}

// thread_exit tears the current thread down. It may not be called from
// IRQ context (there would be nothing to schedule a successor for).
// After status is set to DYING the exiting thread must not touch its own
// TCB again; the successor frees the page in thread_schedule_tail.
func thread_exit() {
	kassert(!intr_context(), "thread_exit: may not exit from interrupt context")

	old := intr_disable()
	cur := thread_current()
	allListRemove(cur)
	cur.status = DYING
	schedule()
	kassert(false, "thread_exit: schedule returned to a dying thread")
	intr_set_level(old)
}

// readyInsert and waitSetInsert are thin seams over the active ready-set
// policy and the wait set (readyset.go, waitset.go); kept here so
// lifecycle ops read top-to-bottom.
func readyInsert(t *thread) {
	rdy.insert(t)
}
