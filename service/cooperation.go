package service

import (
	"context"

	"go.dedis.ch/kyber/v3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/outbe/fingerprinting"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
)

// CooperationService answers partial-evaluation calls from initiating
// agents. It holds nothing but the agent's immutable share; neither the
// incoming point nor the reply is retained.
type CooperationService struct {
	fpv1.UnimplementedCooperationServiceServer
	shard kyber.Scalar
}

// NewCooperationService returns the service for the agent's share.
func NewCooperationService(shard kyber.Scalar) *CooperationService {
	return &CooperationService{shard: shard}
}

// ComputeExponent returns [s]B for a valid blinded point B. Malformed,
// off-curve and identity inputs are rejected.
func (s *CooperationService) ComputeExponent(_ context.Context, req *fpv1.CurvePoint) (*fpv1.CurvePoint, error) {
	b, err := fingerprinting.UnmarshalPoint(req.GetBytes())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if b.Equal(fingerprinting.Suite.Point().Null()) {
		return nil, status.Error(codes.InvalidArgument, "curve point is the identity")
	}
	e := fingerprinting.Suite.Point().Mul(s.shard, b)
	buf, err := fingerprinting.MarshalPoint(e)
	if err != nil {
		return nil, status.Error(codes.Internal, "partial evaluation failed")
	}
	return &fpv1.CurvePoint{Bytes: buf}, nil
}
