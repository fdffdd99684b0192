// Package parallel provides parallel execution helpers.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// For calls fn for every index in [0, n) using up to workers goroutines.
// Indices are handed out one at a time, so uneven jobs still balance.
// workers <= 0 selects NumWorkers().
func For(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = NumWorkers()
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	for i := range n {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
