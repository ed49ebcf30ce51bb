package agent

import "parallel-pi/internal/integrator"

// Job is one partial sum waiting in the pool queue. The worker sends exactly
// one value on Result.
type Job struct {
	Task   integrator.Task
	Result chan<- float64
}
