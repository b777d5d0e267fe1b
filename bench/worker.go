package bench

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"

	"vecsum/utils"
)

// sumRange computes the sum of every vector in r and stores it at the
// vector's own index in results. Writes stay inside [r.Start, r.End), so
// concurrent workers never touch the same element.
func sumRange(vectors [][]int, results []int64, r Range) {
	for i := r.Start; i < r.End; i++ {
		var sum int64
		for _, v := range vectors[i] {
			sum += int64(v)
		}
		results[i] = sum
	}
}

// runWorker processes one partition on its own OS thread, pinned to a core
// best-effort, then emits a single completion line. The line goes through
// utils.LogMessage, which holds the output lock only while printing; the
// summation itself runs unlocked.
func runWorker(wg *sync.WaitGroup, vectors [][]int, results []int64, r Range, workerID int, debug bool) {
	defer wg.Done()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cpuset := unix.CPUSet{}
	cpuset.Set((workerID - 1) % runtime.NumCPU())
	if err := unix.SchedSetaffinity(0, &cpuset); err != nil {
		utils.LogMessage(fmt.Sprintf("Failed to set CPU affinity for worker %d: %v (may require root privileges)", workerID, err), debug)
	}

	sumRange(vectors, results, r)

	utils.LogMessage(fmt.Sprintf("Worker %d processed vectors %d - %d", workerID, r.Start, r.End-1), true)
}
