package integrator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNumericDomain   = errors.New("estimate is not a number")
)

// Task is the immutable input of one worker: the half-open index range
// [Start, End) of midpoint samples and the subinterval width.
type Task struct {
	Index int     `json:"index"`
	Start uint64  `json:"start"`
	End   uint64  `json:"end"`
	Step  float64 `json:"step"`
}

// Len is the number of subintervals assigned to the task.
func (t Task) Len() uint64 {
	return t.End - t.Start
}

// Empty reports whether the task has no subintervals. Empty tasks appear when
// there are more workers than subintervals.
func (t Task) Empty() bool {
	return t.Start == t.End
}

// Validate checks n and workers before any work is dispatched.
func Validate(n uint64, workers int) error {
	if n == 0 {
		return fmt.Errorf("%w: number of subintervals must be at least 1", ErrInvalidArgument)
	}
	if workers <= 0 {
		return fmt.Errorf("%w: number of workers must be at least 1, got %d", ErrInvalidArgument, workers)
	}
	return nil
}

// Partition splits [0, n) into workers contiguous ranges. Every worker gets
// n/workers subintervals and the first n%workers workers get one more.
func Partition(n uint64, workers int) ([]Task, error) {
	if err := Validate(n, workers); err != nil {
		return nil, err
	}

	step := 1.0 / float64(n)
	chunk := n / uint64(workers)
	remainder := n % uint64(workers)

	tasks := make([]Task, workers)
	var currentStart uint64
	for i := 0; i < workers; i++ {
		currentEnd := currentStart + chunk
		if uint64(i) < remainder {
			currentEnd++
		}

		tasks[i] = Task{
			Index: i,
			Start: currentStart,
			End:   currentEnd,
			Step:  step,
		}
		currentStart = currentEnd
	}

	return tasks, nil
}
