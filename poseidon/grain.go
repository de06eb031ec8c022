package poseidon

import (
	"math/big"
	"sync"
)

// Parameter generation with the Grain LFSR construction from the Poseidon
// reference material. A single bit stream, seeded from the sponge parameters,
// yields first the (R_F+R_P)*width round constants and then the 2*width
// Cauchy points the MDS matrix is built from. The tables are fixed for the
// lifetime of the scheme; they are computed once on first use.

// fieldBits is the bit length of the field modulus.
const fieldBits = 256

type grain struct {
	bits []byte
}

// newGrain seeds the 80-bit LFSR state:
//
//	 2 bits  field kind (01 = prime field)
//	 4 bits  S-box kind (0000 = x^alpha)
//	12 bits  field size in bits
//	12 bits  sponge width
//	10 bits  full rounds
//	10 bits  partial rounds
//	30 bits  all ones
//
// and discards the first 160 output bits.
func newGrain() *grain {
	g := &grain{bits: make([]byte, 0, 80)}
	g.append(1, 2)
	g.append(0, 4)
	g.append(fieldBits, 12)
	g.append(width, 12)
	g.append(fullRounds, 10)
	g.append(partialRounds, 10)
	for i := 0; i < 30; i++ {
		g.bits = append(g.bits, 1)
	}
	for i := 0; i < 160; i++ {
		g.step()
	}
	return g
}

func (g *grain) append(v uint, n int) {
	for i := n - 1; i >= 0; i-- {
		g.bits = append(g.bits, byte((v>>uint(i))&1))
	}
}

// step advances the LFSR by one bit and returns it.
func (g *grain) step() byte {
	s := g.bits
	b := s[62] ^ s[51] ^ s[38] ^ s[23] ^ s[13] ^ s[0]
	copy(s, s[1:])
	s[79] = b
	return b
}

// bit returns the next filtered output bit: bit pairs are read and the second
// bit is emitted only when the first is set.
func (g *grain) bit() byte {
	for {
		if g.step() == 1 {
			return g.step()
		}
		g.step()
	}
}

// element samples field elements by rejection: fieldBits filtered bits are
// read (first bit most significant) until the value is below the modulus.
func (g *grain) element() *big.Int {
	for {
		v := new(big.Int)
		for i := 0; i < fieldBits; i++ {
			v.Lsh(v, 1)
			if g.bit() == 1 {
				v.SetBit(v, 0, 1)
			}
		}
		if v.Cmp(Modulus) < 0 {
			return v
		}
	}
}

var (
	tableOnce      sync.Once
	roundConstants [][width]*big.Int
	mdsMatrix      [width][width]*big.Int
)

// tables returns the round constant and MDS tables, generating them on first
// use.
func tables() ([][width]*big.Int, [width][width]*big.Int) {
	tableOnce.Do(generateTables)
	return roundConstants, mdsMatrix
}

func generateTables() {
	g := newGrain()

	rounds := fullRounds + partialRounds
	roundConstants = make([][width]*big.Int, rounds)
	for r := 0; r < rounds; r++ {
		for i := 0; i < width; i++ {
			roundConstants[r][i] = g.element()
		}
	}

	// Cauchy points: the x_i must be pairwise distinct, the y_j likewise,
	// and no x_i + y_j may vanish, so the matrix stays invertible.
	var xs, ys [width]*big.Int
	for i := 0; i < width; i++ {
		xs[i] = g.distinctElement(xs[:i], nil)
	}
	for j := 0; j < width; j++ {
		ys[j] = g.distinctElement(ys[:j], xs[:])
	}
	sum := new(big.Int)
	for i := 0; i < width; i++ {
		for j := 0; j < width; j++ {
			sum.Add(xs[i], ys[j])
			sum.Mod(sum, Modulus)
			mdsMatrix[i][j] = new(big.Int).ModInverse(sum, Modulus)
		}
	}
}

// distinctElement samples an element distinct from all of prev and such that
// its sum with every element of avoid is non-zero mod the modulus.
func (g *grain) distinctElement(prev []*big.Int, avoid []*big.Int) *big.Int {
sample:
	for {
		v := g.element()
		for _, p := range prev {
			if v.Cmp(p) == 0 {
				continue sample
			}
		}
		sum := new(big.Int)
		for _, a := range avoid {
			sum.Add(v, a)
			sum.Mod(sum, Modulus)
			if sum.Sign() == 0 {
				continue sample
			}
		}
		return v
	}
}
