package protocol

import "errors"

// Error kinds of the protocol, matched with errors.Is. The gRPC layer maps
// them onto status codes; no error ever carries a share, the master secret or
// a blinding factor.
var (
	// ErrInvalidInput marks transaction validation failures. Not retriable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidShareMaterial marks undecodable or out-of-range share
	// material. Fatal at startup.
	ErrInvalidShareMaterial = errors.New("invalid share material")

	// ErrPeerUnavailable marks a peer call that failed before the deadline.
	ErrPeerUnavailable = errors.New("peer unavailable")

	// ErrPeerMisbehavior marks a peer reply that is not a valid curve point.
	// Handled like an unavailable peer; the peer is not asked again within
	// the same request.
	ErrPeerMisbehavior = errors.New("peer misbehavior")

	// ErrQuorumLost marks a request that could not assemble threshold many
	// contributors, including by deadline. Retriable by the caller.
	ErrQuorumLost = errors.New("quorum lost")

	// ErrInternal marks violated invariants in the cryptographic layers. Not
	// retriable.
	ErrInternal = errors.New("internal protocol failure")
)
