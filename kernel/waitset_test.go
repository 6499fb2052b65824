package main

import "testing"

func TestWaitSetWakeFirstSingleWakeupPerTick(t *testing.T) {
	waitList = tlist{}
	rdy = &roundRobinReadySet{}

	a := &thread{name: "a", status: BLOCKED, ticksWait: 1}
	b := &thread{name: "b", status: BLOCKED, ticksWait: 1}
	waitSetInsert(a)
	waitSetInsert(b)

	woken := waitSetWakeFirst()
	if woken != a {
		t.Fatalf("first wake = %v, want a", woken)
	}
	if a.status != READY {
		t.Errorf("a.status = %v, want READY", a.status)
	}
	if b.status != BLOCKED {
		t.Errorf("b.status = %v, want still BLOCKED (one wakeup per tick)", b.status)
	}
	if b.ticksWait != 1 {
		t.Errorf("b.ticksWait = %d, want 1 (unchanged: processing stops after the first wakeup)", b.ticksWait)
	}

	woken = waitSetWakeFirst()
	if woken != b {
		t.Fatalf("second wake = %v, want b", woken)
	}
	if b.status != READY {
		t.Errorf("b.status = %v, want READY", b.status)
	}
}

func TestWaitSetWakeFirstNoneReady(t *testing.T) {
	waitList = tlist{}
	rdy = &roundRobinReadySet{}

	a := &thread{name: "a", status: BLOCKED, ticksWait: 5}
	waitSetInsert(a)

	if woken := waitSetWakeFirst(); woken != nil {
		t.Fatalf("woken = %v, want nil", woken)
	}
	if a.ticksWait != 4 {
		t.Errorf("a.ticksWait = %d, want 4", a.ticksWait)
	}
	if a.status != BLOCKED {
		t.Errorf("a.status = %v, want still BLOCKED", a.status)
	}
}
