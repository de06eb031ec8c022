package transaction

import (
	"encoding/binary"
	"math/big"

	"github.com/outbe/fingerprinting/poseidon"
)

// serializationPrefix is the 8-byte domain prefix every canonical
// serialization starts with.
var serializationPrefix = []byte{0xFF, 0xFE, 0xED, 0xDD, 0xCC, 0x00, 0xDD, 0xEE}

// chunkSize is the number of canonical bytes packed into one field element.
// 31 bytes leave the high byte of the 32-byte element zero, so every chunk is
// below the field order.
const chunkSize = 31

// canonicalLen is the fixed length of the canonical byte serialization:
// prefix 8, BIC 16, amounts 8+8, currency 4, instant 8+8, date 2+1+1.
const canonicalLen = 64

// CanonicalBytes is the deterministic byte serialization of the transaction.
// Two transactions serialize equally iff they are equal field by field.
func (t *Transaction) CanonicalBytes() []byte {
	buf := make([]byte, 0, canonicalLen)
	buf = append(buf, serializationPrefix...)

	var bic [16]byte
	copy(bic[:], t.BIC)
	buf = append(buf, bic[:]...)

	buf = binary.LittleEndian.AppendUint64(buf, t.AmountBase)
	buf = binary.LittleEndian.AppendUint64(buf, t.AmountAtto)

	var currency [4]byte
	copy(currency[:], t.Currency)
	buf = append(buf, currency[:]...)

	buf = binary.LittleEndian.AppendUint64(buf, t.Seconds)
	buf = binary.LittleEndian.AppendUint64(buf, t.Nanos)

	buf = binary.LittleEndian.AppendUint16(buf, t.WWD.Year)
	buf = append(buf, t.WWD.Month, t.WWD.Day)

	return buf
}

// Canonicalize packs the canonical bytes into field elements: consecutive
// 31-byte chunks, each read as a big-endian integer.
func (t *Transaction) Canonicalize() []*big.Int {
	buf := t.CanonicalBytes()
	elems := make([]*big.Int, 0, (len(buf)+chunkSize-1)/chunkSize)
	for off := 0; off < len(buf); off += chunkSize {
		end := off + chunkSize
		if end > len(buf) {
			end = len(buf)
		}
		elems = append(elems, new(big.Int).SetBytes(buf[off:end]))
	}
	return elems
}

// Prehash absorbs the canonical field elements into a fresh sponge and
// returns the pre-image scalar fed to hash-to-curve.
func (t *Transaction) Prehash() *big.Int {
	return poseidon.Hash(t.Canonicalize()...)
}
