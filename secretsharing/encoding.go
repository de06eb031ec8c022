package secretsharing

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"go.dedis.ch/kyber/v3"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/poseidon"
)

// Scalars are carried as the Base58 form of their big-endian 32-byte
// encoding, no checksum, Bitcoin alphabet.

const scalarLen = 32

// EncodeScalar returns the external form of a scalar.
func EncodeScalar(s kyber.Scalar) (string, error) {
	buf, err := s.MarshalBinary()
	if err != nil {
		return "", err
	}
	if len(buf) != scalarLen {
		return "", fmt.Errorf("unexpected scalar encoding length %d", len(buf))
	}
	return base58.Encode(buf), nil
}

// DecodeScalar parses the external form back into a scalar. Strings that do
// not decode to exactly 32 bytes, or whose value is not below the group
// order, are rejected.
func DecodeScalar(s string) (kyber.Scalar, error) {
	buf := base58.Decode(s)
	if len(buf) != scalarLen {
		return nil, fmt.Errorf("%w: must decode to %d bytes, got %d", ErrInvalidShareMaterial, scalarLen, len(buf))
	}
	v := new(big.Int).SetBytes(buf)
	if v.Cmp(poseidon.Modulus) >= 0 {
		return nil, fmt.Errorf("%w: value not below the group order", ErrInvalidShareMaterial)
	}
	return fingerprinting.Suite.Scalar().SetBytes(buf), nil
}
