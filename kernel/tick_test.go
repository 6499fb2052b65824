package main

import "testing"

func TestRecalcRecentCPUZeroLoad(t *testing.T) {
	loadAvg = 0
	// With load_avg = 0, the decay coefficient is 0, so recent_cpu
	// collapses straight to nice.
	got := recalcRecentCPU(fpFromInt(50), 3)
	if want := fpFromInt(3); got != want {
		t.Errorf("recalcRecentCPU = %d, want %d", got, want)
	}
}

func TestComputeLoadAvgCountsReadyAndRunningExcludingIdle(t *testing.T) {
	allList = tlist{}
	loadAvg = 0

	running := &thread{status: RUNNING}
	ready := &thread{status: READY}
	blocked := &thread{status: BLOCKED}
	idle := &thread{status: READY, isIdle: true}

	allListPush(running)
	allListPush(ready)
	allListPush(blocked)
	allListPush(idle)

	old := intr_disable()
	got := computeLoadAvg()
	intr_set_level(old)
	// R = 2 (running, ready); load_avg was 0, so result is R/60.
	want := fpDivInt(fpFromInt(2), 60)
	if got != want {
		t.Errorf("computeLoadAvg = %d, want %d", got, want)
	}
}

func TestMlfqAccountingBumpsRecentCPUEveryTick(t *testing.T) {
	mlfqEnabled = true
	defer func() { mlfqEnabled = false }()
	rdy = &mlfqReadySet{}

	cur := &thread{name: "cur", status: RUNNING, recentCPU: 0}
	g_current = cur
	allList = tlist{}
	allListPush(cur)

	mlfqAccounting(1, cur)

	if cur.recentCPU != fpFromInt(1) {
		t.Errorf("recentCPU = %d, want %d", cur.recentCPU, fpFromInt(1))
	}
}

func TestMlfqAccountingSkipsIdleRecentCPU(t *testing.T) {
	mlfqEnabled = true
	defer func() { mlfqEnabled = false }()
	rdy = &mlfqReadySet{}

	idle := &thread{name: "idle", status: RUNNING, isIdle: true}
	g_current = idle
	allList = tlist{}
	allListPush(idle)

	mlfqAccounting(1, idle)

	if idle.recentCPU != 0 {
		t.Errorf("idle recentCPU = %d, want 0", idle.recentCPU)
	}
}
