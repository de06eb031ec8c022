// Package poseidon implements the fixed-parameter Poseidon sponge used by the
// fingerprint scheme: width 3 over the scalar field of the bn256 G1 group,
// 8 full rounds, 57 partial rounds, x^5 S-box. Round constants and the MDS
// matrix are derived deterministically with the Grain LFSR construction, see
// grain.go.
//
// Sponge rule (scheme outbe-fp-v1): state[0] is the capacity element and
// starts at the field element 2^64; state[1] and state[2] are the rate.
// Absorbed elements are added into the next free rate slot, with a
// permutation once both slots are taken. Finalize runs one permutation and
// returns state[1]; SqueezeBytes emits the big-endian 32-byte encodings of
// the squeezed elements. Changing any of this invalidates previously issued
// fingerprints.
package poseidon

import (
	"math/big"
)

const (
	width        = 3
	rate         = 2
	fullRounds   = 8
	partialRounds = 57
)

// Modulus is the order of the bn256 G1 group, i.e. the prime of the field the
// sponge operates in.
var Modulus, _ = new(big.Int).SetString("65000549695646603732796438742359905742570406053903786389881062969044166799969", 10)

// capacityTag is the domain tag 2^64 the capacity element starts at.
var capacityTag = new(big.Int).Lsh(big.NewInt(1), 64)

// Sponge is a single-use Poseidon sponge. It is not safe for concurrent use.
type Sponge struct {
	state     [width]*big.Int
	pos       int
	squeezing bool
}

// NewSponge returns a fresh sponge with the capacity element set to the
// domain tag.
func NewSponge() *Sponge {
	s := &Sponge{}
	s.state[0] = new(big.Int).Set(capacityTag)
	for i := 1; i < width; i++ {
		s.state[i] = new(big.Int)
	}
	return s
}

// Absorb feeds field elements into the sponge. Elements are reduced mod the
// field order. Absorb must not be called once squeezing has started.
func (s *Sponge) Absorb(elems ...*big.Int) {
	if s.squeezing {
		panic("poseidon: absorb after squeeze")
	}
	for _, e := range elems {
		if s.pos == rate {
			s.permute()
			s.pos = 0
		}
		v := s.state[1+s.pos]
		v.Add(v, e)
		v.Mod(v, Modulus)
		s.pos++
	}
}

// Finalize returns the first squeezed element.
func (s *Sponge) Finalize() *big.Int {
	return s.next()
}

// SqueezeBytes returns n bytes of sponge output, taking the big-endian
// 32-byte encoding of each squeezed element in turn.
func (s *Sponge) SqueezeBytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, elementBytes(s.next())...)
	}
	return out[:n]
}

// Hash absorbs the given elements into a fresh sponge and finalizes it.
func Hash(elems ...*big.Int) *big.Int {
	s := NewSponge()
	s.Absorb(elems...)
	return s.Finalize()
}

func (s *Sponge) next() *big.Int {
	if !s.squeezing {
		s.permute()
		s.pos = 0
		s.squeezing = true
	}
	if s.pos == rate {
		s.permute()
		s.pos = 0
	}
	e := new(big.Int).Set(s.state[1+s.pos])
	s.pos++
	return e
}

// permute applies the Poseidon permutation: half the full rounds, the partial
// rounds with the S-box on state[0] only, then the remaining full rounds.
func (s *Sponge) permute() {
	constants, mds := tables()
	round := 0
	for r := 0; r < fullRounds/2; r++ {
		s.addConstants(constants[round])
		s.sboxFull()
		s.applyMDS(mds)
		round++
	}
	for r := 0; r < partialRounds; r++ {
		s.addConstants(constants[round])
		s.sboxPartial()
		s.applyMDS(mds)
		round++
	}
	for r := 0; r < fullRounds/2; r++ {
		s.addConstants(constants[round])
		s.sboxFull()
		s.applyMDS(mds)
		round++
	}
}

func (s *Sponge) addConstants(rc [width]*big.Int) {
	for i := 0; i < width; i++ {
		v := s.state[i]
		v.Add(v, rc[i])
		v.Mod(v, Modulus)
	}
}

func (s *Sponge) sboxFull() {
	for i := 0; i < width; i++ {
		s.state[i] = pow5(s.state[i])
	}
}

func (s *Sponge) sboxPartial() {
	s.state[0] = pow5(s.state[0])
}

func (s *Sponge) applyMDS(mds [width][width]*big.Int) {
	var next [width]*big.Int
	tmp := new(big.Int)
	for i := 0; i < width; i++ {
		acc := new(big.Int)
		for j := 0; j < width; j++ {
			tmp.Mul(mds[i][j], s.state[j])
			acc.Add(acc, tmp)
		}
		acc.Mod(acc, Modulus)
		next[i] = acc
	}
	s.state = next
}

func pow5(x *big.Int) *big.Int {
	x2 := new(big.Int).Mul(x, x)
	x2.Mod(x2, Modulus)
	x4 := new(big.Int).Mul(x2, x2)
	x4.Mod(x4, Modulus)
	x5 := x4.Mul(x4, x)
	return x5.Mod(x5, Modulus)
}

// elementBytes is the canonical big-endian 32-byte encoding of a field
// element.
func elementBytes(e *big.Int) []byte {
	out := make([]byte, 32)
	e.FillBytes(out)
	return out
}
