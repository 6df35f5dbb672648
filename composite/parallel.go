package composite

import (
	"runtime"
	"sync"
)

// parallelRows executes fn over contiguous chunks of [0, rows), split
// among up to workers goroutines. Each chunk is handled by exactly one
// goroutine, so fn may keep chunk-local scratch state. fn must not touch
// rows outside its chunk.
func parallelRows(rows, workers int, fn func(start, end int)) {
	if rows <= 0 {
		return
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}

	if workers == 1 {
		fn(0, rows)
		return
	}

	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
