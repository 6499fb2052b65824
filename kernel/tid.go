package main

const intMax = int(^uint(0) >> 1)

// tidLock is the one sleep-capable-shaped lock the scheduler itself
// blocks on — in practice just a busy-wait spinlock, since this
// freestanding kernel has no blocking mutex beneath the scheduler to use
// instead. See DESIGN.md Open Question Decision 4: thread_create must
// not call this with interrupts already disabled.
var tidLock spinlock
var nextTid = 1

// allocate_tid hands out strictly increasing positive tids, wrapping from
// INT_MAX back to 2 (1 is reserved for the initial thread, 0 and
// negatives for TID_ERROR/sentinels). Uniqueness against still-live
// threads after a wrap is not guaranteed (see DESIGN.md Open Question
// Decision 3).
func allocate_tid() int {
	acquire(&tidLock)
	tid := bumpNextTid()
	release(&tidLock)
	return tid
}

// bumpNextTid is the pure increment-and-wrap step of allocate_tid, kept
// separate from the lock so the wraparound rule itself can be exercised
// without going through the spinlock.
func bumpNextTid() int {
	tid := nextTid
	if nextTid == intMax {
		nextTid = 2
	} else {
		nextTid++
	}
	return tid
}
