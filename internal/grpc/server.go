package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var errRangeTooLong = errors.New("range too long")

// IntegrationServer computes partial sums on behalf of a remote reducer.
// Ranges longer than maxRange subintervals are refused; zero disables the
// check.
type IntegrationServer struct {
	evaluator integrator.Evaluator
	maxRange  uint64
}

func NewIntegrationServer(ev integrator.Evaluator, maxRange uint64) *IntegrationServer {
	return &IntegrationServer{
		evaluator: ev,
		maxRange:  maxRange,
	}
}

// PartialSum evaluates the midpoint sum of the requested range.
func (s *IntegrationServer) PartialSum(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	task, err := decodeTask(req)
	if err != nil {
		logger.LogERROR("gRPC: rejected partial sum request: " + err.Error())
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if s.maxRange > 0 && task.Len() > s.maxRange {
		err := fmt.Errorf("%w: %d subintervals, limit is %d", errRangeTooLong, task.Len(), s.maxRange)
		logger.LogERROR("gRPC: rejected partial sum request: " + err.Error())
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	logger.INFO.Printf("gRPC: partial sum request for worker %d [%d, %d)", task.Index, task.Start, task.End)

	sum, err := s.evaluator.PartialSum(ctx, task)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, status.FromContextError(err).Err()
		}
		logger.LogERROR("gRPC: partial sum failed: " + err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return encodePartial(task.Index, sum), nil
}

// StartGRPCServer listens on address and serves IntegrationService backed by
// ev in a separate goroutine.
func StartGRPCServer(address string, ev integrator.Evaluator, maxRange uint64) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	s := grpc.NewServer()
	RegisterIntegrationServiceServer(s, NewIntegrationServer(ev, maxRange))

	logger.INFO.Printf("gRPC integration service listening on %s", address)

	go func() {
		if err := s.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			logger.ERROR.Fatalf("gRPC server failed: %v", err)
		}
	}()

	return s, nil
}
