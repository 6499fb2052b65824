package main

import _ "unsafe"

//go:linkname trapinithart trapinithart
func trapinithart()

//go:linkname r_sip r_sip
func r_sip() uintptr

//go:linkname w_sip w_sip
func w_sip(v uintptr)

//go:linkname r_scause r_scause
func r_scause() uintptr

//go:linkname r_sepc r_sepc
func r_sepc() uintptr

var bootTicks int64

//go:nosplit
//export Kerneltrap
func Kerneltrap() {
	w_sip(r_sip() & ^uintptr(2))

	scause := r_scause()
	sepc := r_sepc()

	// timer interrupt
	if scause == 0x8000000000000005 || scause == 0x8000000000000001 {
		// The hardware trap entry has already disabled interrupts on
		// this hart; mirror that here so the scheduler's own
		// interrupts-disabled assertions (thread_tick calls into code
		// that asserts it, e.g. thread_foreach) see the true state.
		savedIntrEnabled := intrEnabled
		intrEnabled = false
		inIRQ = true

		bootTicks++
		thread_tick(bootTicks)

		// The tick handler only requests a yield (intr_yield_on_return);
		// it never yields itself — mutating the ready set and switching
		// threads from inside the IRQ handler that called into arbitrary
		// interrupted code would violate the non-reentrancy discipline
		// this kernel requires.
		inIRQ = false

		if yieldOnReturn {
			yieldOnReturn = false
			thread_yield()
		}

		intrEnabled = savedIntrEnabled
	} else {
		printf("Kerneltrap %x at %x\n", scause, sepc)
		for {
		}
	}
}
