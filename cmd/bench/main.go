package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"sort"
	"time"

	"golang.org/x/exp/slog"

	"github.com/viniciusth/dc3"
)

type inputKind string

const (
	inputRandom   inputKind = "random"
	inputUniform  inputKind = "uniform"
	inputPeriodic inputKind = "periodic"
)

var generators = map[inputKind]func(r *rand.Rand, n, alphabet int) []int{
	inputRandom: func(r *rand.Rand, n, alphabet int) []int {
		text := make([]int, n)
		for i := range text {
			text[i] = r.Intn(alphabet)
		}
		return text
	},
	// Every sample triple collides, forcing the deepest recursion.
	inputUniform: func(r *rand.Rand, n, alphabet int) []int {
		return make([]int, n)
	},
	inputPeriodic: func(r *rand.Rand, n, alphabet int) []int {
		period := make([]int, 1+r.Intn(16))
		for i := range period {
			period[i] = r.Intn(alphabet)
		}
		text := make([]int, n)
		for i := range text {
			text[i] = period[i%len(period)]
		}
		return text
	},
}

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text []int) (time.Duration, uint64, uint64, []int, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	sa, err := dc3.BuildSuffixArray(text)
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, sa, err
}

func naiveSuffixArray(text []int) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return slices.Compare(text[sa[a]:], text[sa[b]:]) < 0
	})
	return sa
}

func runBenchmark(logger *slog.Logger, kind inputKind, n, alphabet, runs int, verify bool) error {
	generate := generators[kind]
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := generate(r, n, alphabet)

		bt, bp, ba, sa, err := measureBuild(text)
		if err != nil {
			return err
		}
		if verify && !slices.Equal(sa, naiveSuffixArray(text)) {
			return fmt.Errorf("run %d: suffix array differs from the naive sort", run)
		}
		logger.Debug("run finished", "run", run, "input", kind, "n", n)
		fmt.Printf("%s,%d,%d,%d,%.0f,%d,%d\n",
			kind, n, alphabet, run,
			float64(bt.Nanoseconds()), bp, ba)
	}
	return nil
}

func main() {
	input := flag.String("input", "random", "Input kind: random, uniform or periodic")
	n := flag.Int("n", 0, "Text length")
	alphabet := flag.Int("alphabet", 26, "Number of distinct symbols")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	verify := flag.Bool("verify", false, "Check every result against a naive sort")
	verbose := flag.Bool("v", false, "Log every run")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Error("could not create CPU profile", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("could not start CPU profile", "err", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *n <= 0 || *alphabet <= 0 || *runs <= 0 {
		fmt.Println("Usage: go run main.go -input=<kind> -n=<N> [-alphabet=<A>] [-runs=<runs>] [-verify]")
		os.Exit(1)
	}

	kind := inputKind(*input)
	if _, ok := generators[kind]; !ok {
		fmt.Println("Invalid input kind:", *input)
		os.Exit(1)
	}

	if err := runBenchmark(logger, kind, *n, *alphabet, *runs, *verify); err != nil {
		logger.Error("benchmark failed", "input", kind, "n", *n, "err", err)
		os.Exit(1)
	}
}
