//go:build linux

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// maxCPUs is the number of CPUs a unix.CPUSet can describe.
const maxCPUs = 1024

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to the lowest-numbered CPU of its current affinity mask. restore puts the
// previous mask back and unlocks the thread; call it from the same goroutine.
func Pin() (cpu int, restore func(), err error) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return -1, nil, fmt.Errorf("affinity: read mask: %w", err)
	}

	cpu = firstCPU(&prev)
	if cpu < 0 {
		runtime.UnlockOSThread()
		return -1, nil, ErrNoCPU
	}

	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return -1, nil, fmt.Errorf("affinity: pin to cpu %d: %w", cpu, err)
	}

	restore = func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}
	return cpu, restore, nil
}

func firstCPU(set *unix.CPUSet) int {
	for i := 0; i < maxCPUs; i++ {
		if set.IsSet(i) {
			return i
		}
	}
	return -1
}
