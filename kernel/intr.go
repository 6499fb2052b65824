package main

// intrEnabled mirrors the hardware interrupt-enable flag. There is no
// linknamed read-back primitive in this kernel, so the mirror is
// maintained in software by every call that changes it; intr_off/intr_on
// themselves are the only ground truth. Outside this file they are called
// directly only by spinlock.go's acquire/release, which do not update
// this mirror.
var intrEnabled = true

// inIRQ is set while Kerneltrap's timer branch (trap.go) runs thread_tick,
// and cleared before its return-path yield. It is how thread_unblock/thread_exit tell interrupt context from thread
// context.
var inIRQ = false

// yieldOnReturn is the IRQ-return yield request the tick handler raises;
// Kerneltrap consumes and clears it just before returning to the
// interrupted thread.
var yieldOnReturn = false

// intr_get_level reports whether interrupts are currently enabled.
func intr_get_level() bool {
	return intrEnabled
}

// intr_context reports whether the caller is running on behalf of the
// timer IRQ.
func intr_context() bool {
	return inIRQ
}

// intr_disable turns interrupts off and returns the previous level, so the
// caller can restore it exactly as it found it.
func intr_disable() bool {
	old := intrEnabled
	if intrEnabled {
		intr_off()
		intrEnabled = false
	}
	return old
}

// intr_set_level restores a previously saved level.
func intr_set_level(enabled bool) bool {
	old := intrEnabled
	if enabled && !intrEnabled {
		intrEnabled = true
		intr_on()
	} else if !enabled && intrEnabled {
		intrEnabled = false
		intr_off()
	}
	return old
}

// intr_yield_on_return is called only from the tick handler (tick.go) to
// ask the interrupt-return path to invoke thread_yield on the way out of
// Kerneltrap, instead of yielding immediately from IRQ context.
func intr_yield_on_return() {
	yieldOnReturn = true
}
