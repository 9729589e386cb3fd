package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight process-wide accumulators for build and query timings.

var (
	mu       sync.Mutex
	totals   = make(map[string]time.Duration)
	counters = make(map[string]int64)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("terrain.Build")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Count adds n to the named counter.
func Count(name string, n int64) {
	mu.Lock()
	counters[name] += n
	mu.Unlock()
}

// Reset clears all durations and counters.
func Reset() {
	mu.Lock()
	clear(totals)
	clear(counters)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated durations.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// Counters returns a copy of the accumulated counters.
func Counters() map[string]int64 {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]int64, len(counters))
	for k, v := range counters {
		out[k] = v
	}
	return out
}

// TopN formats the n largest durations.
// Example: "terrain.Build:4.2ms, terrain.IntersectAll:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, list[i].name+":"+formatMs(ms))
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	// one decimal, trailing .0 dropped
	return strconv.FormatFloat(float64(int64(ms*10))/10, 'f', -1, 64) + "ms"
}
