// Package parallel splits index ranges over the available CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Execute calls work on contiguous chunks covering [iStart, iEnd), one
// goroutine per chunk, and blocks until all of them return. Chunks never
// overlap; work must tolerate being called concurrently on distinct chunks.
func Execute(iStart, iEnd int, work func(start, end int)) {
	nbIterations := iEnd - iStart
	if nbIterations <= 0 {
		return
	}

	nbTasks := runtime.NumCPU()
	nbIterationsPerTask := nbIterations / nbTasks
	if nbIterationsPerTask < 1 {
		nbIterationsPerTask = 1
		nbTasks = nbIterations
	}
	extra := nbIterations - nbTasks*nbIterationsPerTask

	var wg sync.WaitGroup
	start := iStart
	for i := 0; i < nbTasks; i++ {
		end := start + nbIterationsPerTask
		if i < extra {
			end++
		}
		wg.Add(1)
		go func(start, end int) {
			work(start, end)
			wg.Done()
		}(start, end)
		start = end
	}
	wg.Wait()
}
