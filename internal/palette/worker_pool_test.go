package palette

import (
	"sync"
	"testing"
)

func TestNewWorkerPool(t *testing.T) {
	pool := NewWorkerPool(4)
	if pool == nil {
		t.Fatal("Expected non-nil worker pool")
	}
}

func TestNewWorkerPool_ZeroWorkers(t *testing.T) {
	// Should default to runtime.NumCPU() when workers <= 0
	pool := NewWorkerPool(0)
	if pool == nil {
		t.Error("Expected non-nil WorkerPool")
	}
}

func TestWorkerPool_Submit(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Close()

	var counter int
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(5)
	for i := 0; i < 5; i++ {
		pool.Submit(func() {
			defer wg.Done()
			mu.Lock()
			counter++
			mu.Unlock()
		})
	}

	wg.Wait()

	if counter != 5 {
		t.Errorf("Expected counter to be 5, got %d", counter)
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(3)
	pool.Start()
	defer pool.Close()

	var results []int
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(10)
	for i := 0; i < 10; i++ {
		value := i
		pool.Submit(func() {
			defer wg.Done()
			mu.Lock()
			results = append(results, value*2)
			mu.Unlock()
		})
	}

	wg.Wait()

	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
}

func TestWorkerPool_StartOnce(t *testing.T) {
	pool := NewWorkerPool(2)

	// Start should be idempotent
	pool.Start()
	pool.Start()
	defer pool.Close()

	var executed bool
	var wg sync.WaitGroup
	wg.Add(1)
	pool.Submit(func() {
		defer wg.Done()
		executed = true
	})

	wg.Wait()

	if !executed {
		t.Error("Expected job to be executed")
	}
}

func TestWorkerPool_IndependentCallers(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Close()

	// Two callers share the pool but track completion independently; each
	// joins only its own submissions.
	var mu sync.Mutex
	counts := map[string]int{}

	run := func(name string, jobs int) {
		var wg sync.WaitGroup
		wg.Add(jobs)
		for i := 0; i < jobs; i++ {
			pool.Submit(func() {
				defer wg.Done()
				mu.Lock()
				counts[name]++
				mu.Unlock()
			})
		}
		wg.Wait()
	}

	var callers sync.WaitGroup
	callers.Add(2)
	go func() {
		defer callers.Done()
		run("first", 8)
	}()
	go func() {
		defer callers.Done()
		run("second", 5)
	}()
	callers.Wait()

	if counts["first"] != 8 {
		t.Errorf("Expected 8 jobs for the first caller, got %d", counts["first"])
	}
	if counts["second"] != 5 {
		t.Errorf("Expected 5 jobs for the second caller, got %d", counts["second"])
	}
}
