package integrator

import (
	"context"
	"math"
)

// F is the quarter-circle integrand sqrt(1 - x^2). Arguments outside [-1, 1]
// give NaN.
func F(x float64) float64 {
	return math.Sqrt(1.0 - x*x)
}

// PartialSum evaluates F at the midpoint of every subinterval in the task's
// range and returns the plain running sum.
func PartialSum(task Task) float64 {
	sum := 0.0
	for i := task.Start; i < task.End; i++ {
		x := (float64(i) + 0.5) * task.Step
		sum += F(x)
	}
	return sum
}

// Evaluator computes the partial sum of one task. Implementations may run the
// work in-process or hand it to a remote agent.
type Evaluator interface {
	PartialSum(ctx context.Context, task Task) (float64, error)
}

// LocalEvaluator runs PartialSum on the calling goroutine.
type LocalEvaluator struct{}

func (LocalEvaluator) PartialSum(_ context.Context, task Task) (float64, error) {
	return PartialSum(task), nil
}
