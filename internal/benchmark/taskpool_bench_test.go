// Package benchmark contains performance benchmarks for the pool.
package benchmark

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/imgtools/taskpool/pkg/taskpool"
)

// BenchmarkSubmit measures task submission performance at several pool sizes.
func BenchmarkSubmit(b *testing.B) {
	for _, workers := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("%dworkers", workers), func(b *testing.B) {
			pool := taskpool.New(workers)
			defer pool.Close()

			g := taskpool.NewGroup()
			task := func(_ context.Context) error { return nil }

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = pool.Submit(taskpool.NewTask(g, task))
			}
			b.StopTimer()
			g.Wait()
		})
	}
}

// BenchmarkThroughput measures end-to-end execution including the batch wait.
func BenchmarkThroughput(b *testing.B) {
	pool := taskpool.New(4)
	defer pool.Close()

	var completed int64
	task := func(_ context.Context) error {
		atomic.AddInt64(&completed, 1)
		return nil
	}

	b.ReportAllocs()
	b.ResetTimer()
	g := taskpool.NewGroup()
	for i := 0; i < b.N; i++ {
		_ = pool.Submit(taskpool.NewTask(g, task))
	}
	g.Wait()
	b.StopTimer()

	if atomic.LoadInt64(&completed) != int64(b.N) {
		b.Fatalf("completed %d tasks, want %d", completed, b.N)
	}
}

// BenchmarkContention measures submission under concurrent producers.
func BenchmarkContention(b *testing.B) {
	pool := taskpool.New(8)
	defer pool.Close()

	g := taskpool.NewGroup()
	task := func(_ context.Context) error { return nil }

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = pool.Submit(taskpool.NewTask(g, task))
		}
	})
	b.StopTimer()
	g.Wait()
}

// BenchmarkWithWork measures throughput with simulated per-task work.
func BenchmarkWithWork(b *testing.B) {
	for _, workDuration := range []time.Duration{0, time.Microsecond, 10 * time.Microsecond} {
		label := "NoWork"
		if workDuration > 0 {
			label = workDuration.String()
		}

		b.Run(label, func(b *testing.B) {
			pool := taskpool.New(4)
			defer pool.Close()

			dur := workDuration
			task := func(_ context.Context) error {
				if dur > 0 {
					time.Sleep(dur)
				}
				return nil
			}

			b.ReportAllocs()
			b.ResetTimer()
			g := taskpool.NewGroup()
			for i := 0; i < b.N; i++ {
				_ = pool.Submit(taskpool.NewTask(g, task))
			}
			g.Wait()
		})
	}
}

// BenchmarkZeroWorkers measures the synchronous degenerate mode.
func BenchmarkZeroWorkers(b *testing.B) {
	pool := taskpool.New(0)
	defer pool.Close()

	task := func(_ context.Context) error { return nil }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.Submit(taskpool.NewTask(nil, task))
	}
}

// BenchmarkClose measures shutdown cost with workers running.
func BenchmarkClose(b *testing.B) {
	task := func(_ context.Context) error { return nil }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool := taskpool.New(4)
		g := taskpool.NewGroup()
		for j := 0; j < 10; j++ {
			_ = pool.Submit(taskpool.NewTask(g, task))
		}
		pool.Close()
		g.Wait()
	}
}
