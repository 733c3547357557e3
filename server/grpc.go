package main

import (
	"github.com/google/uuid"
	"github.com/sdeoras/servable/pipeline"
	"github.com/sdeoras/servable/proto"
	"golang.org/x/net/context"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type predictServer struct {
	svc *predictService
}

func (s *predictServer) Classify(ctx context.Context, req *proto.PredictRequest) (*proto.PredictResponse, error) {
	reqID := uuid.New().String()

	res, err := s.svc.predict(ctx, reqID, req.Images)
	if err != nil {
		return nil, toStatus(err)
	}

	return proto.MarshalResult(res), nil
}

func (s *predictServer) Info(ctx context.Context, _ *proto.Empty) (*proto.ModelInfo, error) {
	return &proto.ModelInfo{
		Backend:       s.svc.backend,
		Policy:        string(s.svc.policy),
		SignatureKey:  s.svc.signatureKey,
		NumClasses:    int64(s.svc.numClasses),
		BundleVersion: s.svc.bundleVersion,
	}, nil
}

// toStatus maps pipeline error kinds to grpc codes: bad input is the
// caller's fault, everything else is ours.
func toStatus(err error) error {
	switch err.(type) {
	case *pipeline.DecodeError:
		return status.Error(codes.InvalidArgument, err.Error())
	case *pipeline.ConfigurationError:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
