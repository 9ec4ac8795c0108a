// Command arenabench exercises the arena allocator with the scenario mix a
// request-processing workload produces: many small typed objects, mixed
// object sizes, slice growth through the container adapter, arena reuse
// across cycles, and one arena per worker on a pool.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/memkit/arena"
)

var (
	numAllocs = flag.Int("n", 1_000_000, "Allocations per scenario")
	blockSize = flag.Int("block-size", 0, "Arena block size in bytes (0 = default)")
	workers   = flag.Int("workers", 4, "Workers for the per-worker-arena scenario")
	rounds    = flag.Int("rounds", 100, "Reset cycles for the reuse scenario")
	largeLen  = flag.Int("large-len", 100, "Element count in each large object payload")
)

type smallObject struct {
	value int64
}

type mediumObject struct {
	values [32]int32
	extra  float64
}

type largeObject struct {
	id   int64
	data []int64 // arena-backed payload
}

// sink defeats dead-code elimination across scenarios.
var sink int64

func timed(name string, fn func()) {
	start := time.Now()
	fn()
	fmt.Printf("%-30s: %10.3f ms\n", name, float64(time.Since(start).Microseconds())/1000.0)
}

func logStats(logger *slog.Logger, name string, s arena.Stats) {
	logger.Info("scenario finished",
		"scenario", name,
		"blocks", s.BlockCount,
		"bytes_used", s.TotalUsed,
		"bytes_allocated", s.TotalAllocated,
		"utilization", fmt.Sprintf("%.2f", s.Utilization),
	)
}

func benchSmall(logger *slog.Logger) {
	a := arena.NewArena(*blockSize)
	defer a.Release()

	timed("small objects", func() {
		for i := 0; i < *numAllocs; i++ {
			p := arena.New(a, smallObject{value: int64(i)})
			sink += p.value
		}
	})
	logStats(logger, "small objects", a.Stats())
}

func benchMedium(logger *slog.Logger) {
	a := arena.NewArena(*blockSize)
	defer a.Release()

	timed("medium objects", func() {
		for i := 0; i < *numAllocs; i++ {
			m := arena.Alloc[mediumObject](a)
			for j := range m.values {
				m.values[j] = int32(i)
			}
			m.extra = float64(i) * 1.5
			sink += int64(m.values[0])
		}
	})
	logStats(logger, "medium objects", a.Stats())
}

func benchLarge(logger *slog.Logger) {
	a := arena.NewArena(*blockSize)
	defer a.Release()

	n := *numAllocs / 100
	if n == 0 {
		n = 1
	}
	timed("large objects", func() {
		for i := 0; i < n; i++ {
			obj := arena.New(a, largeObject{id: int64(i)})
			obj.data = arena.AllocSlice[int64](a, *largeLen)
			for j := range obj.data {
				obj.data[j] = int64(j)
			}
			sink += obj.data[len(obj.data)-1]
		}
	})
	logStats(logger, "large objects", a.Stats())
}

func benchAppend(logger *slog.Logger) {
	a := arena.NewArena(*blockSize)
	defer a.Release()
	ints := arena.NewAllocator[int64](a)

	timed("adapter append", func() {
		var s []int64
		for i := 0; i < *numAllocs; i++ {
			s = arena.Append(ints, s, int64(i))
		}
		sink += s[len(s)-1]
	})
	logStats(logger, "adapter append", a.Stats())
}

func benchReuse(logger *slog.Logger) {
	a := arena.NewArena(*blockSize)
	defer a.Release()

	per := *numAllocs / *rounds
	timed("reset reuse", func() {
		for r := 0; r < *rounds; r++ {
			for i := 0; i < per; i++ {
				p := arena.New(a, smallObject{value: int64(i)})
				sink += p.value
			}
			a.Reset()
		}
	})
	logStats(logger, "reset reuse", a.Stats())
}

func benchWorkers(logger *slog.Logger) {
	pool, err := ants.NewPool(*workers)
	if err != nil {
		logger.Error("worker pool", "err", err)
		os.Exit(1)
	}
	defer pool.Release()

	per := *numAllocs / *workers
	timed("arena per worker", func() {
		var wg sync.WaitGroup
		for w := 0; w < *workers; w++ {
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				// Each worker owns its arena; the core is single-threaded.
				a := arena.NewArena(*blockSize)
				for i := 0; i < per; i++ {
					arena.New(a, smallObject{value: int64(i)})
				}
				a.Release()
			})
			if err != nil {
				wg.Done()
				logger.Error("submit", "err", err)
			}
		}
		wg.Wait()
	})
}

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("starting benchmark",
		"allocations", *numAllocs,
		"block_size", *blockSize,
		"workers", *workers,
		"rounds", *rounds,
	)

	fmt.Printf("=== Arena benchmark (%d allocations) ===\n", *numAllocs)
	benchSmall(logger)
	benchMedium(logger)
	benchLarge(logger)
	benchAppend(logger)
	benchReuse(logger)
	benchWorkers(logger)

	if sink == 42 {
		fmt.Println(sink) // keep the accumulator live
	}
}
