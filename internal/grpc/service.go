package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"parallel-pi/internal/integrator"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName      = "pi.IntegrationService"
	partialSumMethod = "/" + serviceName + "/PartialSum"
)

var errMalformedMessage = errors.New("malformed message")

// IntegrationServiceServer is the server side of pi.IntegrationService.
type IntegrationServiceServer interface {
	PartialSum(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterIntegrationServiceServer(s grpc.ServiceRegistrar, srv IntegrationServiceServer) {
	s.RegisterService(&integrationServiceDesc, srv)
}

func partialSumHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IntegrationServiceServer).PartialSum(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: partialSumMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IntegrationServiceServer).PartialSum(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var integrationServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*IntegrationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PartialSum",
			Handler:    partialSumHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pi/integration",
}

// Indices travel as decimal strings: a protobuf number is a double and cannot
// hold every uint64.
func encodeTask(task integrator.Task) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"index": structpb.NewNumberValue(float64(task.Index)),
		"start": structpb.NewStringValue(strconv.FormatUint(task.Start, 10)),
		"end":   structpb.NewStringValue(strconv.FormatUint(task.End, 10)),
		"step":  structpb.NewNumberValue(task.Step),
	}}
}

func decodeTask(msg *structpb.Struct) (integrator.Task, error) {
	fields := msg.GetFields()

	start, err := uintField(fields, "start")
	if err != nil {
		return integrator.Task{}, err
	}
	end, err := uintField(fields, "end")
	if err != nil {
		return integrator.Task{}, err
	}
	if end < start {
		return integrator.Task{}, fmt.Errorf("%w: end %d before start %d", errMalformedMessage, end, start)
	}

	step, err := numberField(fields, "step")
	if err != nil {
		return integrator.Task{}, err
	}
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return integrator.Task{}, fmt.Errorf("%w: step must be a positive number, got %v", errMalformedMessage, step)
	}

	index, err := numberField(fields, "index")
	if err != nil {
		return integrator.Task{}, err
	}

	return integrator.Task{
		Index: int(index),
		Start: start,
		End:   end,
		Step:  step,
	}, nil
}

func encodePartial(index int, sum float64) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"index": structpb.NewNumberValue(float64(index)),
		"sum":   structpb.NewNumberValue(sum),
	}}
}

func decodePartial(msg *structpb.Struct) (int, float64, error) {
	fields := msg.GetFields()
	index, err := numberField(fields, "index")
	if err != nil {
		return 0, 0, err
	}
	sum, err := numberField(fields, "sum")
	if err != nil {
		return 0, 0, err
	}
	return int(index), sum, nil
}

func uintField(fields map[string]*structpb.Value, name string) (uint64, error) {
	v, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", errMalformedMessage, name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a decimal string", errMalformedMessage, name)
	}
	n, err := strconv.ParseUint(s.StringValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", errMalformedMessage, name, err)
	}
	return n, nil
}

func numberField(fields map[string]*structpb.Value, name string) (float64, error) {
	v, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", errMalformedMessage, name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a number", errMalformedMessage, name)
	}
	return n.NumberValue, nil
}
