package fingerprinting

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"go.dedis.ch/kyber/v3"

	"github.com/outbe/fingerprinting/poseidon"
)

// hashToCurvePrefix separates the hash-to-curve domain from any other use of
// the group.
const hashToCurvePrefix = "CRA_FINGERPRINT"

// fingerprintLen is the number of squeezed bytes a fingerprint carries.
const fingerprintLen = 32

type hashablePoint interface {
	Hash([]byte) kyber.Point
}

// HashToPoint maps the pre-image scalar h deterministically to a point of the
// G1 group. The map is total and its outputs are in the prime-order subgroup.
func HashToPoint(h *big.Int) (kyber.Point, error) {
	hp, ok := Suite.Point().(hashablePoint)
	if !ok {
		return nil, errors.New("suite point is not hashable")
	}
	buf := make([]byte, 0, len(hashToCurvePrefix)+32)
	buf = append(buf, hashToCurvePrefix...)
	var scalar [32]byte
	h.FillBytes(scalar[:])
	buf = append(buf, scalar[:]...)
	return hp.Hash(buf), nil
}

// PointElements splits the affine coordinates of Q into two field elements,
// x first, reduced into the scalar field.
func PointElements(q kyber.Point) ([]*big.Int, error) {
	buf, err := q.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if len(buf) != PointLen {
		return nil, fmt.Errorf("unexpected point encoding length %d", len(buf))
	}
	x := new(big.Int).SetBytes(buf[:32])
	y := new(big.Int).SetBytes(buf[32:])
	x.Mod(x, poseidon.Modulus)
	y.Mod(y, poseidon.Modulus)
	return []*big.Int{x, y}, nil
}

// PointDigest absorbs the affine coordinates of Q into a fresh sponge and
// squeezes the 32-byte digest the fingerprint is encoded from.
func PointDigest(q kyber.Point) (Fingerprint, error) {
	elems, err := PointElements(q)
	if err != nil {
		return nil, err
	}
	s := poseidon.NewSponge()
	s.Absorb(elems...)
	return Fingerprint(s.SqueezeBytes(fingerprintLen)), nil
}

// MarshalPoint encodes a point into its 64-byte wire form.
func MarshalPoint(q kyber.Point) ([]byte, error) {
	buf, err := q.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if len(buf) != PointLen {
		return nil, fmt.Errorf("unexpected point encoding length %d", len(buf))
	}
	return buf, nil
}

// UnmarshalPoint parses a 64-byte wire encoding, rejecting malformed input
// and points not on the curve.
func UnmarshalPoint(buf []byte) (kyber.Point, error) {
	if len(buf) != PointLen {
		return nil, fmt.Errorf("curve point must be %d bytes, got %d", PointLen, len(buf))
	}
	p := Suite.Point()
	if err := p.UnmarshalBinary(buf); err != nil {
		return nil, fmt.Errorf("malformed curve point: %v", err)
	}
	return p, nil
}

// Fingerprint is the 32-byte Poseidon squeeze of a protocol output point.
type Fingerprint []byte

// Compact returns the Base58 form of the fingerprint, the representation
// handed to callers.
func (f Fingerprint) Compact() string {
	return base58.Encode(f)
}

// ParseFingerprint decodes a compact fingerprint string.
func ParseFingerprint(s string) (Fingerprint, error) {
	buf := base58.Decode(s)
	if len(buf) != fingerprintLen {
		return nil, fmt.Errorf("fingerprint must decode to %d bytes, got %d", fingerprintLen, len(buf))
	}
	return Fingerprint(buf), nil
}
