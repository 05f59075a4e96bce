package taskpool_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/imgtools/taskpool/pkg/taskpool"
)

func Example() {
	pool := taskpool.New(4)
	defer pool.Close()

	var sum atomic.Int64
	group := taskpool.NewGroup()
	for i := 1; i <= 10; i++ {
		i := i
		pool.Submit(taskpool.NewTask(group, func(ctx context.Context) error {
			sum.Add(int64(i))
			return nil
		}))
	}

	group.Wait()
	fmt.Println(sum.Load())
	// Output: 55
}

func ExamplePool_SetNumWorkers() {
	pool := taskpool.New(2)
	defer pool.Close()

	pool.SetNumWorkers(8)
	fmt.Println(pool.NumWorkers())
	// Output: 8
}

func ExampleNew_zeroWorkers() {
	// A zero-worker pool runs each task on the caller, so execution
	// order matches submission order.
	pool := taskpool.New(0)
	defer pool.Close()

	for _, name := range []string{"header", "scanlines", "trailer"} {
		name := name
		pool.Submit(taskpool.NewTask(nil, func(ctx context.Context) error {
			fmt.Println(name)
			return nil
		}))
	}
	// Output:
	// header
	// scanlines
	// trailer
}
