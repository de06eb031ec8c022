package secretsharing

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/poseidon"
)

func TestScalarRoundTrip(t *testing.T) {
	rand := fingerprinting.Suite.RandomStream()
	for i := 0; i < 32; i++ {
		s := fingerprinting.Suite.Scalar().Pick(rand)
		enc, err := EncodeScalar(s)
		require.NoError(t, err)
		got, err := DecodeScalar(enc)
		require.NoError(t, err)
		require.True(t, s.Equal(got))
	}
}

func TestScalarRoundTripSmall(t *testing.T) {
	// Small values have leading zero bytes; the codec must keep the fixed
	// 32-byte form.
	s := fingerprinting.Suite.Scalar().SetInt64(7)
	enc, err := EncodeScalar(s)
	require.NoError(t, err)
	got, err := DecodeScalar(enc)
	require.NoError(t, err)
	require.True(t, s.Equal(got))
}

func TestDecodeRejectsAboveOrder(t *testing.T) {
	buf := make([]byte, 32)
	poseidon.Modulus.FillBytes(buf)
	_, err := DecodeScalar(base58.Encode(buf))
	require.ErrorIs(t, err, ErrInvalidShareMaterial)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	for _, s := range []string{"", "abc", base58.Encode(make([]byte, 31)), base58.Encode(make([]byte, 33)), "!!!"} {
		_, err := DecodeScalar(s)
		require.Error(t, err, "input %q", s)
	}
}
