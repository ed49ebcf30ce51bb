package agent

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"parallel-pi/internal/config"
	"parallel-pi/internal/grpc"
	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"
)

// Pool runs a fixed number of workers fed through a channel. It implements
// integrator.Evaluator, so a reducer can use it directly or through gRPC.
type Pool struct {
	jobs chan Job
	size int
	once sync.Once
}

// NewPool starts size workers. A non-positive size is raised to 1.
func NewPool(size int) *Pool {
	if size <= 0 {
		logger.LogERROR("COMPUTING_POWER is not positive. AUTO SET TO 1")
		size = 1
	}

	p := &Pool{
		jobs: make(chan Job, size),
		size: size,
	}
	for i := 0; i < size; i++ {
		go Worker(p.jobs, i+1)
	}
	return p
}

func (p *Pool) Size() int {
	return p.size
}

// PartialSum queues the task and waits for its result. A job that was already
// queued when ctx ends still runs; its result is dropped.
func (p *Pool) PartialSum(ctx context.Context, task integrator.Task) (float64, error) {
	result := make(chan float64, 1)

	select {
	case p.jobs <- Job{Task: task, Result: result}:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	select {
	case sum := <-result:
		return sum, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Close stops the workers. PartialSum must not be called afterwards.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.jobs)
	})
}

// StartAgent serves the worker pool over gRPC until SIGINT or SIGTERM.
func StartAgent() {
	cp := config.AppConfig.ComputingPower
	logger.INFO.Println("COMPUTING_POWER set to", cp)

	pool := NewPool(cp)
	defer pool.Close()

	address := ":" + config.AppConfig.AgentPort
	server, err := grpc.StartGRPCServer(address, pool, config.AppConfig.MaxSubintervals)
	if err != nil {
		logger.ERROR.Fatalf("Failed to start gRPC server on %s: %v", address, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.INFO.Println("Shutdown signal received, stopping gRPC server")
	server.GracefulStop()
}
