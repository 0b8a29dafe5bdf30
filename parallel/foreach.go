// Package parallel contains the bounded-concurrency ForEach loop used by
// validation evaluation.
package parallel

import "sync"

import "github.com/klauspost/cpuid/v2"

// DefaultLimit is the goroutine limit used when ForEach is called with a
// non-positive limit. It defaults to the number of logical cores.
var DefaultLimit = 1

func init() {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		DefaultLimit = n
	}
}

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length. A non-positive
// limit means DefaultLimit.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if length <= 0 {
		return // No iterations to perform
	}

	sem := make(chan struct{}, limit) // Semaphore with buffer size 'limit'
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		i := i            // Capture loop variable
		sem <- struct{}{} // Acquire semaphore
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore after function exits

			body(i)
		}(i)
	}

	wg.Wait() // Wait for all goroutines to finish
}
