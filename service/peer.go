package service

import (
	"context"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/protocol"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
)

// DialPeer opens the durable multiplexed channel to a cooperating agent.
// Connection establishment is lazy; the returned peer is safe for concurrent
// use. Transport authentication is left to the deployment.
func DialPeer(address string) (protocol.Peer, error) {
	conn, err := grpc.Dial(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &grpcPeer{conn: conn, client: fpv1.NewCooperationServiceClient(conn)}, nil
}

type grpcPeer struct {
	conn   *grpc.ClientConn
	client fpv1.CooperationServiceClient
}

// ComputeExponent sends the blinded point and validates the reply point.
// Transport failures surface as ErrPeerUnavailable, invalid reply points as
// ErrPeerMisbehavior.
func (p *grpcPeer) ComputeExponent(ctx context.Context, b kyber.Point) (kyber.Point, error) {
	buf, err := fingerprinting.MarshalPoint(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrInternal, err)
	}
	resp, err := p.client.ComputeExponent(ctx, &fpv1.CurvePoint{Bytes: buf})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrPeerUnavailable, err)
	}
	e, err := fingerprinting.UnmarshalPoint(resp.GetBytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrPeerMisbehavior, err)
	}
	return e, nil
}

func (p *grpcPeer) Close() error {
	return p.conn.Close()
}
