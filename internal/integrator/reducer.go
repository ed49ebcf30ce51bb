package integrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// Result is the outcome of one estimation run.
type Result struct {
	N        uint64
	Workers  int
	Step     float64
	Partials []float64
	TotalSum float64
	Integral float64
	Pi       float64
	Elapsed  time.Duration
}

// Err reports ErrNumericDomain when a NaN produced by an out-of-domain sample
// reached the final estimate.
func (r Result) Err() error {
	if math.IsNaN(r.Pi) {
		return fmt.Errorf("%w: N=%d workers=%d", ErrNumericDomain, r.N, r.Workers)
	}
	return nil
}

// Reduce adds partials in task order and scales the total by the step width
// and by 4. Integral of sqrt(1-x^2) over [0,1] is pi/4.
func Reduce(n uint64, partials []float64) Result {
	step := 1.0 / float64(n)

	totalSum := 0.0
	for _, p := range partials {
		totalSum += p
	}
	integral := step * totalSum

	return Result{
		N:        n,
		Workers:  len(partials),
		Step:     step,
		Partials: partials,
		TotalSum: totalSum,
		Integral: integral,
		Pi:       4.0 * integral,
	}
}

// Estimate computes the pi approximation with one goroutine per worker.
func Estimate(n uint64, workers int) (Result, error) {
	return EstimateWith(context.Background(), n, workers, LocalEvaluator{})
}

// EstimateWith partitions [0, n), starts one goroutine per task and reduces the
// partial sums once every goroutine has finished. Each goroutine writes only
// its own slot of the partials slice. Worker errors are collected after the
// join and returned together.
func EstimateWith(ctx context.Context, n uint64, workers int, ev Evaluator) (Result, error) {
	start := time.Now()

	tasks, err := Partition(n, workers)
	if err != nil {
		return Result{}, err
	}

	partials := make([]float64, len(tasks))
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task Task) {
			defer wg.Done()
			if task.Empty() {
				return
			}
			sum, err := ev.PartialSum(ctx, task)
			if err != nil {
				errs[task.Index] = fmt.Errorf("worker %d [%d, %d): %w", task.Index, task.Start, task.End, err)
				return
			}
			partials[task.Index] = sum
		}(task)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return Result{}, err
	}

	result := Reduce(n, partials)
	result.Elapsed = time.Since(start)
	return result, nil
}
