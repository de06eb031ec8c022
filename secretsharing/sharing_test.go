package secretsharing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3/share"

	"github.com/outbe/fingerprinting"
)

func TestGenerateParameters(t *testing.T) {
	rand := fingerprinting.Suite.RandomStream()

	_, _, err := Generate(0, 5, rand)
	require.ErrorIs(t, err, ErrThreshold)
	_, _, err = Generate(6, 5, rand)
	require.ErrorIs(t, err, ErrThreshold)
	_, _, err = Generate(1, 0, rand)
	require.ErrorIs(t, err, ErrAgents)

	secret, shares, err := Generate(3, 5, rand)
	require.NoError(t, err)
	require.Len(t, shares, 5)
	require.False(t, secret.Equal(fingerprinting.Suite.Scalar().Zero()))
	for i, s := range shares {
		require.Equal(t, i, s.I)
	}
}

func TestReconstructAnySubset(t *testing.T) {
	rand := fingerprinting.Suite.RandomStream()
	secret, shares, err := Generate(3, 5, rand)
	require.NoError(t, err)

	subsets := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}
	for _, subset := range subsets {
		picked := make([]*share.PriShare, 0, len(subset))
		for _, i := range subset {
			picked = append(picked, shares[i])
		}
		got, err := Reconstruct(picked, 3, 5)
		require.NoError(t, err)
		require.True(t, secret.Equal(got), "subset %v", subset)
	}
}

func TestReconstructBelowThreshold(t *testing.T) {
	rand := fingerprinting.Suite.RandomStream()
	secret, shares, err := Generate(3, 5, rand)
	require.NoError(t, err)

	_, err = Reconstruct(shares[:2], 3, 5)
	require.Error(t, err)

	// Interpolating two shares as if the threshold were 2 must not hit the
	// real secret: the polynomial has degree 2.
	got, err := Reconstruct(shares[:2], 2, 5)
	require.NoError(t, err)
	require.False(t, secret.Equal(got))
}

func TestThresholdOne(t *testing.T) {
	rand := fingerprinting.Suite.RandomStream()
	secret, shares, err := Generate(1, 3, rand)
	require.NoError(t, err)
	// Degree-0 polynomial: every share is the secret.
	for _, s := range shares {
		require.True(t, secret.Equal(s.V))
	}
}

func TestThresholdEqualsAgents(t *testing.T) {
	rand := fingerprinting.Suite.RandomStream()
	secret, shares, err := Generate(5, 5, rand)
	require.NoError(t, err)
	got, err := Reconstruct(shares, 5, 5)
	require.NoError(t, err)
	require.True(t, secret.Equal(got))
}

func TestWipe(t *testing.T) {
	s := fingerprinting.Suite.Scalar().SetInt64(42)
	Wipe(s, nil)
	require.True(t, s.Equal(fingerprinting.Suite.Scalar().Zero()))
}
