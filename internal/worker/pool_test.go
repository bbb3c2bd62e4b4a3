package worker_test

import (
	"sort"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/remaimber-it/trivia/internal/worker"
)

func TestRun_CollectsEveryResult(t *testing.T) {
	pool := worker.NewPool[int](3, 1)

	var calls atomic.Int32
	ids := make([]string, 20)
	jobs := make([]worker.Job[int], 20)
	for i := range jobs {
		i := i
		ids[i] = strconv.Itoa(i)
		jobs[i] = func() int {
			calls.Add(1)
			return i * i
		}
	}

	results := worker.Run(pool, ids, jobs)
	if len(results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(results))
	}
	if calls.Load() != 20 {
		t.Errorf("expected 20 calls, got %d", calls.Load())
	}

	sort.Slice(results, func(i, j int) bool {
		a, _ := strconv.Atoi(results[i].JobID)
		b, _ := strconv.Atoi(results[j].JobID)
		return a < b
	})
	for i, r := range results {
		if r.Output != i*i {
			t.Errorf("job %s: expected %d, got %d", r.JobID, i*i, r.Output)
		}
	}
}

func TestClose_Idempotent(t *testing.T) {
	pool := worker.NewPool[string](2, 4)
	pool.Submit("a", func() string { return "done" })
	pool.Close()
	pool.Close()

	var got []string
	for r := range pool.Results() {
		got = append(got, r.Output)
	}
	if len(got) != 1 || got[0] != "done" {
		t.Errorf("expected [done], got %v", got)
	}
}
