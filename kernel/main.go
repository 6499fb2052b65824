package main

import (
	"strings"
	"unsafe"
)

// get_cmdline is the boot loader's kernel command line, the same kind of
// already-existing collaborator get_end/get_etext are (kalloc.go/vm.go):
// some earlier boot stage hands the kernel a string, and this kernel
// just reads it.
//
//go:linkname get_cmdline get_cmdline
func get_cmdline() string

//export KMain
func KMain() {
	printf("kmeminit... ")
	kinit()
	printf("OK\n")

	printf("kvminit...  ")
	kvminit()
	printf("OK\n")

	printf("kvminithart...  ")
	kvminithart()
	printf("OK\n")

	printf("trapinithart...  ")
	trapinithart()
	printf("OK\n")

	mlfqsFlag = strings.Contains(get_cmdline(), "-o mlfqs")
	if mlfqsFlag {
		printf("thread_init: mlfqs scheduler\n")
	} else {
		printf("thread_init: priority round-robin scheduler\n")
	}

	old := intr_disable()
	thread_init()
	intr_set_level(old)

	thread_start()

	schedulerSmokeTest()
}

func printfTest() {
	printf("--- printf test ---\n")
	printInt(2147483647)
	uart_putc('\n')
	printString("Hello there")
	uart_putc('\n')
	t := 1
	printf("Today is %s \n, %c %d %d\n", "Monday", 'M', t, 2)
}

func kallocTest() {
	printf("--- kalloc test ---\n")

	printf("test kalloc\n")
	count := 0
	for kalloc() != 0 {
		count++
	}
	printf("allocate %d KB memory\n", int(count * 4))
}

// schedulerSmokeTest runs three threads at different priorities from the
// initial thread via thread_yield, the same way the old spinlockTest
// exercised spinlock.go directly from KMain.
func schedulerSmokeTest() {
	printf("--- scheduler smoke test ---\n")

	thread_create("A", 31, workerMain, nil)
	thread_create("B", 40, workerMain, nil)
	thread_create("C", 20, workerMain, nil)

	for i := 0; i < 5; i++ {
		old := intr_disable()
		thread_yield()
		intr_set_level(old)
	}

	printf("scheduler smoke test done\n")
}

func workerMain(aux unsafe.Pointer) {
	t := thread_current()
	printf("worker %s pri %d running\n", t.name, t.priority)
}

func main() {}
