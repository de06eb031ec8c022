// Package service exposes the fingerprint protocol over gRPC: the public
// FingerprintService and the agent-to-agent CooperationService, plus the
// gRPC-backed peer channel the coordinator fans out on.
package service

import (
	"context"
	"errors"
	"time"

	"go.dedis.ch/onet/v3/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/outbe/fingerprinting/protocol"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
)

// DefaultDeadline bounds a fingerprint request when the caller supplies no
// deadline of its own.
const DefaultDeadline = 5 * time.Second

// FingerprintService serves the public fingerprinting endpoint. The engine
// is chosen once at startup and never changes.
type FingerprintService struct {
	fpv1.UnimplementedFingerprintServiceServer
	engine   protocol.Engine
	deadline time.Duration
}

// NewFingerprintService returns a service running the given engine. A
// non-positive deadline selects DefaultDeadline.
func NewFingerprintService(engine protocol.Engine, deadline time.Duration) *FingerprintService {
	if deadline <= 0 {
		deadline = DefaultDeadline
	}
	return &FingerprintService{engine: engine, deadline: deadline}
}

// GenerateFingerprint validates the transaction data, runs the protocol and
// returns the compact fingerprint.
func (s *FingerprintService) GenerateFingerprint(ctx context.Context, req *fpv1.TransactionFingerprintData) (*fpv1.Fingerprint, error) {
	tx, err := transactionFromWire(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	fp, err := protocol.Fingerprint(ctx, s.engine, tx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &fpv1.Fingerprint{Value: fp.Compact()}, nil
}

// toStatus maps protocol error kinds onto the stable gRPC taxonomy.
func toStatus(err error) error {
	switch {
	case errors.Is(err, protocol.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, protocol.ErrQuorumLost):
		return status.Error(codes.Unavailable, err.Error())
	default:
		log.Error("fingerprint request failed:", err)
		return status.Error(codes.Internal, "fingerprint computation failed")
	}
}
