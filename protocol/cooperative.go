package protocol

import (
	"context"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/share"

	"github.com/outbe/fingerprinting"
)

// Cooperative evaluates fingerprints with the initiator's own share plus
// threshold-1 partial evaluations gathered from cooperating agents.
type Cooperative struct {
	self      int
	shard     kyber.Scalar
	threshold int
	agents    int
	coord     *Coordinator
}

// NewCooperative returns a cooperative engine for agent self holding shard,
// in a deployment of the given size.
func NewCooperative(self int, shard kyber.Scalar, threshold, agents int, coord *Coordinator) (*Cooperative, error) {
	if agents < 1 || threshold < 1 || threshold > agents {
		return nil, fmt.Errorf("%w: threshold %d of %d agents", ErrInvalidShareMaterial, threshold, agents)
	}
	if self < 1 || self > agents {
		return nil, fmt.Errorf("%w: agent id %d out of range", ErrInvalidShareMaterial, self)
	}
	if shard == nil || shard.Equal(fingerprinting.Suite.Scalar().Zero()) {
		return nil, fmt.Errorf("%w: secret shard is zero", ErrInvalidShareMaterial)
	}
	return &Cooperative{
		self:      self,
		shard:     shard,
		threshold: threshold,
		agents:    agents,
		coord:     coord,
	}, nil
}

// Process blinds p, gathers partial evaluations, combines them in the
// exponent and unblinds the result.
func (e *Cooperative) Process(ctx context.Context, req *Request, p kyber.Point) (kyber.Point, error) {
	if err := req.Advance(StateBlinding); err != nil {
		return nil, err
	}
	r := nonZeroScalar()
	defer r.Zero()
	b := fingerprinting.Suite.Point().Mul(r, p)

	// Own partial evaluation first; the gather only has to find the
	// remaining threshold-1 contributors.
	own := &share.PubShare{
		I: e.self - 1,
		V: fingerprinting.Suite.Point().Mul(e.shard, b),
	}

	if err := req.Advance(StateGathering); err != nil {
		return nil, err
	}
	shares := []*share.PubShare{own}
	if e.threshold > 1 {
		gathered, err := e.coord.Gather(ctx, req, b, e.threshold-1)
		if err != nil {
			return nil, err
		}
		shares = append(shares, gathered...)
	}

	if err := req.Advance(StateCombining); err != nil {
		return nil, err
	}
	blinded, err := share.RecoverCommit(fingerprinting.Suite, shares, e.threshold, e.agents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	rInv := fingerprinting.Suite.Scalar().Inv(r)
	defer rInv.Zero()
	return fingerprinting.Suite.Point().Mul(rInv, blinded), nil
}

// nonZeroScalar samples a blinding factor from the suite's cryptographic
// random stream, rejecting zero.
func nonZeroScalar() kyber.Scalar {
	zero := fingerprinting.Suite.Scalar().Zero()
	for {
		s := fingerprinting.Suite.Scalar().Pick(fingerprinting.Suite.RandomStream())
		if !s.Equal(zero) {
			return s
		}
	}
}
