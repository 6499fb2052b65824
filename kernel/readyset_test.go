package main

import "testing"

func TestRoundRobinReadySetFIFOTiebreak(t *testing.T) {
	r := &roundRobinReadySet{}
	low := &thread{name: "low", priority: 10}
	mid1 := &thread{name: "mid1", priority: 20}
	mid2 := &thread{name: "mid2", priority: 20}
	high := &thread{name: "high", priority: 30}

	r.insert(low)
	r.insert(mid1)
	r.insert(mid2)
	r.insert(high)

	if got := r.popHighest(); got != high {
		t.Fatalf("popHighest = %v, want high", got.name)
	}
	// mid1 was inserted before mid2 at the same priority: FIFO tiebreak.
	if got := r.popHighest(); got != mid1 {
		t.Fatalf("popHighest = %v, want mid1", got.name)
	}
	if got := r.popHighest(); got != mid2 {
		t.Fatalf("popHighest = %v, want mid2", got.name)
	}
	if got := r.popHighest(); got != low {
		t.Fatalf("popHighest = %v, want low", got.name)
	}
	if !r.empty() {
		t.Errorf("ready set should be empty")
	}
}

func TestRoundRobinHasHigherThan(t *testing.T) {
	r := &roundRobinReadySet{}
	r.insert(&thread{name: "a", priority: 15})

	// oldPriority is irrelevant in round-robin mode: it is always a
	// single max-scan against newPriority.
	if !r.hasHigherThan(999, 10) {
		t.Errorf("hasHigherThan(_, 10) = false, want true")
	}
	if r.hasHigherThan(999, 20) {
		t.Errorf("hasHigherThan(_, 20) = true, want false")
	}
}

func TestRoundRobinAgeCapsAtMax(t *testing.T) {
	r := &roundRobinReadySet{}
	a := &thread{name: "a", priority: PRI_MAX}
	b := &thread{name: "b", priority: PRI_MAX - 1}
	r.insert(a)
	r.insert(b)

	r.age()

	if a.priority != PRI_MAX {
		t.Errorf("a.priority = %d, want capped at %d", a.priority, PRI_MAX)
	}
	if b.priority != PRI_MAX {
		t.Errorf("b.priority = %d, want %d", b.priority, PRI_MAX)
	}
}

func TestMlfqReadySetOrdering(t *testing.T) {
	m := &mlfqReadySet{}
	low := &thread{name: "low", priority: 5}
	high := &thread{name: "high", priority: 50}
	m.insert(low)
	m.insert(high)

	if got := m.popHighest(); got != high {
		t.Fatalf("popHighest = %v, want high", got.name)
	}
	if got := m.popHighest(); got != low {
		t.Fatalf("popHighest = %v, want low", got.name)
	}
	if !m.empty() {
		t.Errorf("mlfq ready set should be empty")
	}
}

func TestMlfqReadySetRelocate(t *testing.T) {
	m := &mlfqReadySet{}
	a := &thread{name: "a", priority: 10}
	m.insert(a)

	a.priority = 40
	m.relocate(a, 10)

	if !m.queues[10].empty() {
		t.Errorf("old queue should be empty after relocate")
	}
	if m.queues[40].empty() {
		t.Errorf("new queue should hold the relocated thread")
	}
	if got := m.popHighest(); got != a {
		t.Errorf("popHighest after relocate = %v, want a", got.name)
	}
}

func TestMlfqHasHigherThan(t *testing.T) {
	m := &mlfqReadySet{}
	m.insert(&thread{name: "a", priority: 33})

	// Dropping from 40 to 20 scans the band (20, 40], which covers 33.
	if !m.hasHigherThan(40, 20) {
		t.Errorf("hasHigherThan(40, 20) = false, want true")
	}
	// Dropping from 30 to 25 scans the band (25, 30], which does not
	// reach the occupied queue at 33 even though it is ready — the
	// bounded scan trusts the invariant that nothing above the old
	// priority (30) needed checking.
	if m.hasHigherThan(30, 25) {
		t.Errorf("hasHigherThan(30, 25) = true, want false (33 is outside the scanned band)")
	}
	// Raising or holding priority steady never needs a scan.
	if m.hasHigherThan(20, 40) {
		t.Errorf("hasHigherThan(20, 40) = true, want false (priority increased)")
	}
	if m.hasHigherThan(33, 33) {
		t.Errorf("hasHigherThan(33, 33) = true, want false (unchanged)")
	}
	// The band's low end is exclusive: dropping from 35 to 33 must not
	// see the thread sitting exactly at 33.
	if m.hasHigherThan(35, 33) {
		t.Errorf("hasHigherThan(35, 33) = true, want false (33 excluded by strict bound)")
	}
}
