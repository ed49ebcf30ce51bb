package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"parallel-pi/internal/auth"
	"parallel-pi/internal/config"
	"parallel-pi/internal/grpc"
	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"
)

var ErrRequestTooLarge = errors.New("request too large")

// EvaluatorInstance computes partial sums for every estimation request.
var EvaluatorInstance integrator.Evaluator = integrator.LocalEvaluator{}

// InitEvaluator connects to the agent at AGENT_ADDRESS when it is set and
// keeps the in-process evaluator otherwise. The returned function releases the
// connection.
func InitEvaluator() (func() error, error) {
	address := config.AppConfig.AgentAddress
	if address == "" {
		logger.LogINFO("AGENT_ADDRESS not set. Partial sums are computed in-process")
		EvaluatorInstance = integrator.LocalEvaluator{}
		return func() error { return nil }, nil
	}

	client, err := grpc.NewGRPCEvaluator(address, config.AppConfig.AgentRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent at %s: %w", address, err)
	}
	logger.LogINFO("Partial sums are sent to agent at " + address)
	EvaluatorInstance = client
	return client.Close, nil
}

// CheckLimits rejects requests with more subintervals than MAX_SUBINTERVALS
// or more workers than MAX_WORKERS. Every worker costs a task, a result slot
// and a goroutine.
func CheckLimits(n uint64, workers int) error {
	if limit := config.AppConfig.MaxSubintervals; limit > 0 && n > limit {
		return fmt.Errorf("%w: N=%d exceeds the limit of %d", ErrRequestTooLarge, n, limit)
	}
	if limit := config.AppConfig.MaxWorkers; limit > 0 && workers > limit {
		return fmt.Errorf("%w: T=%d exceeds the limit of %d", ErrRequestTooLarge, workers, limit)
	}
	return nil
}

// Compute runs one estimation with EvaluatorInstance.
func Compute(ctx context.Context, n uint64, workers int) (integrator.Result, error) {
	if err := integrator.Validate(n, workers); err != nil {
		return integrator.Result{}, err
	}
	if err := CheckLimits(n, workers); err != nil {
		return integrator.Result{}, err
	}

	logger.LogINFO(fmt.Sprintf("Estimating pi for %s with N=%d, T=%d", auth.CallerLogin(ctx), n, workers))
	return integrator.EstimateWith(ctx, n, workers, EvaluatorInstance)
}
