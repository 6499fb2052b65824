package main

type spinlock struct {
	locked uint32
}

func initlock(lk *spinlock) {
	lk.locked = 0
}

func acquire(lk *spinlock) {
	intr_off()
	for sync_test_and_set(&lk.locked) == 1 {}
	sync_barrier()
}

func release(lk *spinlock) {
	sync_release(&lk.locked)
	intr_on()
}