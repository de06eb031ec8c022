// Package protocol implements the two fingerprint evaluation modes and the
// coordinator that gathers partial evaluations from cooperating agents.
//
// The naive engine holds the master secret directly and exists for
// development. The cooperative engine holds one Shamir share; it blinds the
// hashed transaction point, collects threshold many partial evaluations and
// reconstructs the keyed point in the exponent by Lagrange interpolation.
package protocol

import (
	"context"
	"fmt"

	"go.dedis.ch/kyber/v3"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/transaction"
)

// Engine evaluates Y = [k]P for the shared master secret k. The two
// implementations are chosen once at startup from configuration.
type Engine interface {
	Process(ctx context.Context, req *Request, p kyber.Point) (kyber.Point, error)
}

// Fingerprint runs the full pipeline for one transaction: validation,
// canonicalization and pre-hash, hash-to-curve, engine evaluation and the
// final squeeze.
func Fingerprint(ctx context.Context, eng Engine, tx *transaction.Transaction) (fingerprinting.Fingerprint, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	req := NewRequest()
	if err := req.Advance(StateHashing); err != nil {
		return nil, err
	}
	h := tx.Prehash()

	if err := req.Advance(StateMapping); err != nil {
		return nil, err
	}
	p, err := fingerprinting.HashToPoint(h)
	if err != nil {
		req.Fail()
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	y, err := eng.Process(ctx, req, p)
	if err != nil {
		req.Fail()
		return nil, err
	}

	if err := req.Advance(StateFinalizing); err != nil {
		return nil, err
	}
	if y.Equal(fingerprinting.Suite.Point().Null()) {
		req.Fail()
		return nil, fmt.Errorf("%w: evaluation yielded the identity", ErrInternal)
	}
	digest, err := fingerprinting.PointDigest(y)
	if err != nil {
		req.Fail()
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return digest, req.Advance(StateDone)
}

// Naive evaluates fingerprints with the master secret held in-process.
// Development only; a production deployment never holds k in one place.
type Naive struct {
	secret kyber.Scalar
}

// NewNaive returns a naive engine for the given master secret.
func NewNaive(secret kyber.Scalar) (*Naive, error) {
	if secret == nil || secret.Equal(fingerprinting.Suite.Scalar().Zero()) {
		return nil, fmt.Errorf("%w: master secret is zero", ErrInvalidShareMaterial)
	}
	return &Naive{secret: secret}, nil
}

// Process walks the request through the degenerate single-agent protocol:
// S = {self}, no blinding needed.
func (e *Naive) Process(_ context.Context, req *Request, p kyber.Point) (kyber.Point, error) {
	for _, s := range []State{StateBlinding, StateGathering, StateCombining} {
		if err := req.Advance(s); err != nil {
			return nil, err
		}
	}
	return fingerprinting.Suite.Point().Mul(e.secret, p), nil
}
