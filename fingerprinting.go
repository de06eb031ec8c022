// Package fingerprinting provides the curve suite and the hashing primitives
// shared by the fingerprint protocol packages: the bn256 G1 group, the
// deterministic hash-to-curve map, the Poseidon digest of a group point and
// the compact Base58 fingerprint encoding.
package fingerprinting

import (
	"go.dedis.ch/kyber/v3/pairing/bn256"
)

// SchemeVersion names the pinned fingerprint scheme. The sponge rule, the
// hash-to-curve map and the canonical serialization are all part of it;
// changing any of them invalidates previously issued fingerprints.
const SchemeVersion = "outbe-fp-v1"

// Suite is the bn256 suite all group and scalar arithmetic runs on. Only the
// G1 group is used; it has prime order and cofactor 1, so every valid point
// lies in the prime-order subgroup.
var Suite = bn256.NewSuiteG1()

// PointLen is the wire length of a marshalled G1 point: the uncompressed
// affine coordinates x||y, each 32 bytes big-endian.
const PointLen = 64
