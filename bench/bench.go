// Package bench measures append throughput of the list against the bounded
// MPMC ring buffer it grew out of. The ring needs a consumer to make room,
// so its producers are paired with a single drainer; the list is unbounded
// and runs producers only, with one full iteration at the end to keep the
// comparison honest about read cost.
package bench

import (
	"fmt"
	"sync"
	"time"

	lfring "github.com/LENSHOOD/go-lock-free-ring-buffer"

	lflist "github.com/gsingh-ds/go-lock-free-list"
)

// Result is one measured run.
type Result struct {
	Name    string
	Ops     uint64
	Elapsed time.Duration
}

// Mops returns million operations per second.
func (r Result) Mops() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds() / 1e6
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d ops in %v (%.2f Mops/s)", r.Name, r.Ops, r.Elapsed, r.Mops())
}

// AppendList appends producers*perProducer elements concurrently, then
// iterates the result once.
func AppendList(producers, perProducer int) Result {
	list := lflist.New[uint64]()
	total := uint64(producers) * uint64(perProducer)

	var wg sync.WaitGroup
	start := time.Now()
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base uint64) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				list.Append(base + uint64(i))
			}
		}(uint64(p) * uint64(perProducer))
	}
	wg.Wait()

	var yielded uint64
	it := list.Iter()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		yielded++
	}
	elapsed := time.Since(start)

	if yielded != total {
		panic(fmt.Sprintf("list bench lost elements: %d != %d", yielded, total))
	}
	return Result{Name: "lflist append", Ops: total, Elapsed: elapsed}
}

// OfferRing pushes the same workload through the node-based ring buffer,
// with one consumer draining so producers never stall forever.
func OfferRing(producers, perProducer int, capacity uint64) Result {
	ring := lfring.New[uint64](lfring.NodeBased, capacity)
	total := uint64(producers) * uint64(perProducer)

	var wg sync.WaitGroup
	start := time.Now()
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base uint64) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				for !ring.Offer(base + uint64(i)) {
				}
			}
		}(uint64(p) * uint64(perProducer))
	}

	var drained uint64
	for drained < total {
		if _, ok := ring.Poll(); ok {
			drained++
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	return Result{Name: "lfring offer/poll", Ops: total, Elapsed: elapsed}
}

// Run executes both workloads with the same producer count and volume.
func Run(producers, perProducer int, ringCapacity uint64) []Result {
	return []Result{
		AppendList(producers, perProducer),
		OfferRing(producers, perProducer, ringCapacity),
	}
}
