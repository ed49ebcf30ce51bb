package agent

import (
	"fmt"

	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"
)

// Worker evaluates jobs from jobs until the channel is closed.
func Worker(jobs <-chan Job, workerID int) {
	for job := range jobs {
		logger.LogINFO(fmt.Sprintf("Worker %d received range [%d, %d)", workerID, job.Task.Start, job.Task.End))
		job.Result <- integrator.PartialSum(job.Task)
	}
}
