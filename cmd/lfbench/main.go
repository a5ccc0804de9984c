// lfbench runs the comparative throughput workloads and renders an HTML
// report.
package main

import (
	"flag"
	"os"

	"github.com/go-kit/log"

	"github.com/gsingh-ds/go-lock-free-list/bench"
)

func main() {
	producers := flag.Int("producers", 4, "concurrent producer goroutines")
	perProducer := flag.Int("n", 1_000_000, "appends per producer")
	capacity := flag.Uint64("capacity", 1024, "ring buffer capacity (power of two)")
	out := flag.String("out", "bench.html", "report output path")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	results := bench.Run(*producers, *perProducer, *capacity)
	for _, r := range results {
		logger.Log("bench", r.Name, "ops", r.Ops, "elapsed", r.Elapsed, "mops", r.Mops())
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := bench.RenderHTML(f, results); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	logger.Log("msg", "report written", "path", *out)
}
