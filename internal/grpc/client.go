package grpc

import (
	"context"
	"fmt"
	"time"

	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// GRPCEvaluator is an integrator.Evaluator that sends every task to a remote
// agent. It is safe for concurrent use.
type GRPCEvaluator struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// NewGRPCEvaluator connects to the agent at address over an insecure channel.
// A zero timeout leaves the caller's deadline in charge.
func NewGRPCEvaluator(address string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCEvaluator, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(address, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCEvaluator{
		conn:    conn,
		timeout: timeout,
	}, nil
}

func (c *GRPCEvaluator) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *GRPCEvaluator) PartialSum(ctx context.Context, task integrator.Task) (float64, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, partialSumMethod, encodeTask(task), out); err != nil {
		logger.LogERROR(fmt.Sprintf("gRPC: partial sum for worker %d failed: %v", task.Index, err))
		return 0, err
	}

	index, sum, err := decodePartial(out)
	if err != nil {
		return 0, err
	}
	if index != task.Index {
		return 0, fmt.Errorf("%w: reply for worker %d, want %d", errMalformedMessage, index, task.Index)
	}
	return sum, nil
}
