package service

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/outbe/fingerprinting"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
)

func TestComputeExponent(t *testing.T) {
	shard := fingerprinting.Suite.Scalar().Pick(fingerprinting.Suite.RandomStream())
	svc := NewCooperationService(shard)

	b, err := fingerprinting.HashToPoint(big.NewInt(123))
	require.NoError(t, err)
	buf, err := fingerprinting.MarshalPoint(b)
	require.NoError(t, err)

	resp, err := svc.ComputeExponent(context.Background(), &fpv1.CurvePoint{Bytes: buf})
	require.NoError(t, err)

	e, err := fingerprinting.UnmarshalPoint(resp.GetBytes())
	require.NoError(t, err)
	require.True(t, e.Equal(fingerprinting.Suite.Point().Mul(shard, b)))

	// Purity: same input, same output.
	again, err := svc.ComputeExponent(context.Background(), &fpv1.CurvePoint{Bytes: buf})
	require.NoError(t, err)
	require.Equal(t, resp.GetBytes(), again.GetBytes())
}

func TestComputeExponentRejectsMalformed(t *testing.T) {
	shard := fingerprinting.Suite.Scalar().SetInt64(5)
	svc := NewCooperationService(shard)

	bad := [][]byte{
		nil,
		make([]byte, 16),
		make([]byte, 65),
	}
	offCurve := make([]byte, fingerprinting.PointLen)
	for i := range offCurve {
		offCurve[i] = 0x5A
	}
	bad = append(bad, offCurve)

	for i, buf := range bad {
		_, err := svc.ComputeExponent(context.Background(), &fpv1.CurvePoint{Bytes: buf})
		require.Error(t, err, "case %d", i)
		require.Equal(t, codes.InvalidArgument, status.Code(err), "case %d", i)
	}
}

func TestComputeExponentRejectsIdentity(t *testing.T) {
	shard := fingerprinting.Suite.Scalar().SetInt64(5)
	svc := NewCooperationService(shard)

	buf, err := fingerprinting.MarshalPoint(fingerprinting.Suite.Point().Null())
	require.NoError(t, err)
	_, err = svc.ComputeExponent(context.Background(), &fpv1.CurvePoint{Bytes: buf})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
