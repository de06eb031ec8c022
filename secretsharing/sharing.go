// Package secretsharing generates and reconstructs Shamir shares of the
// master fingerprinting secret, and provides the Base58 codec shares and
// secrets travel in outside a process.
package secretsharing

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/share"

	"github.com/outbe/fingerprinting"
)

// Parameter and share-material failure modes, fatal wherever they occur.
var (
	ErrThreshold            = errors.New("threshold must be at least 1 and at most the number of agents")
	ErrAgents               = errors.New("number of agents must be at least 1")
	ErrInvalidShareMaterial = errors.New("invalid share material")
)

// Generate samples a non-zero master secret and splits it into agent shares:
// a polynomial of degree threshold-1 with the secret as constant term,
// evaluated at x = 1..agents. The returned secret is the polynomial's
// constant term; the other coefficients are wiped before Generate returns.
// Callers that must not keep the secret around wipe it with Wipe after
// encoding.
func Generate(threshold, agents int, rand cipher.Stream) (kyber.Scalar, []*share.PriShare, error) {
	if agents < 1 {
		return nil, nil, ErrAgents
	}
	if threshold < 1 || threshold > agents {
		return nil, nil, ErrThreshold
	}

	secret := nonZeroScalar(rand)
	coeffs := make([]kyber.Scalar, threshold)
	coeffs[0] = secret
	for i := 1; i < threshold; i++ {
		coeffs[i] = fingerprinting.Suite.Scalar().Pick(rand)
	}

	shares := make([]*share.PriShare, agents)
	for i := 1; i <= agents; i++ {
		shares[i-1] = &share.PriShare{I: i - 1, V: evalAt(coeffs, i)}
	}
	Wipe(coeffs[1:]...)
	return secret, shares, nil
}

// evalAt evaluates the polynomial at x by Horner's rule.
func evalAt(coeffs []kyber.Scalar, x int) kyber.Scalar {
	xs := fingerprinting.Suite.Scalar().SetInt64(int64(x))
	v := fingerprinting.Suite.Scalar().Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		v.Mul(v, xs)
		v.Add(v, coeffs[i])
	}
	return v
}

// Reconstruct recovers the master secret from at least threshold shares by
// Lagrange interpolation at zero.
func Reconstruct(shares []*share.PriShare, threshold, agents int) (kyber.Scalar, error) {
	if len(shares) < threshold {
		return nil, fmt.Errorf("%w: %d shares for threshold %d", ErrInvalidShareMaterial, len(shares), threshold)
	}
	secret, err := share.RecoverSecret(fingerprinting.Suite, shares, threshold, agents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareMaterial, err)
	}
	return secret, nil
}

// Wipe zeroes scalars holding secret material.
func Wipe(scalars ...kyber.Scalar) {
	for _, s := range scalars {
		if s != nil {
			s.Zero()
		}
	}
}

func nonZeroScalar(rand cipher.Stream) kyber.Scalar {
	zero := fingerprinting.Suite.Scalar().Zero()
	for {
		s := fingerprinting.Suite.Scalar().Pick(rand)
		if !s.Equal(zero) {
			return s
		}
	}
}
