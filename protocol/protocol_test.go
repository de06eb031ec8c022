package protocol

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/secretsharing"
	"github.com/outbe/fingerprinting/transaction"
)

// localPeer answers partial-evaluation calls in-process, with switches for
// the failure modes the coordinator has to handle.
type localPeer struct {
	shard  kyber.Scalar
	down   bool
	tamper bool
	delay  time.Duration
}

func (p *localPeer) ComputeExponent(ctx context.Context, b kyber.Point) (kyber.Point, error) {
	if p.down {
		return nil, fmt.Errorf("%w: connection refused", ErrPeerUnavailable)
	}
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrPeerUnavailable, ctx.Err())
		case <-time.After(p.delay):
		}
	}
	s := p.shard
	if p.tamper {
		s = fingerprinting.Suite.Scalar().Add(p.shard, fingerprinting.Suite.Scalar().One())
	}
	return fingerprinting.Suite.Point().Mul(s, b), nil
}

func (p *localPeer) Close() error { return nil }

// deployment is an in-process (t, n) topology for one initiator.
type deployment struct {
	secret kyber.Scalar
	shards []kyber.Scalar // by agent id - 1
	peers  map[string]*localPeer
}

func newDeployment(t *testing.T, threshold, agents int) *deployment {
	secret, shares, err := secretsharing.Generate(threshold, agents,
		fingerprinting.Suite.RandomStream())
	require.NoError(t, err)

	d := &deployment{secret: secret, peers: make(map[string]*localPeer)}
	for _, s := range shares {
		d.shards = append(d.shards, s.V)
		d.peers[address(s.I+1)] = &localPeer{shard: s.V}
	}
	return d
}

func address(id int) string {
	return fmt.Sprintf("agent-%d:9001", id)
}

func (d *deployment) dial(addr string) (Peer, error) {
	p, ok := d.peers[addr]
	if !ok {
		return nil, fmt.Errorf("unknown peer %s", addr)
	}
	return p, nil
}

// engine builds the cooperative engine for the given initiator over the
// given member ids.
func (d *deployment) engine(t *testing.T, self, threshold, agents int, memberIDs []int) *Cooperative {
	members := make([]Member, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, Member{ID: id, Address: address(id)})
	}
	coord := NewCoordinator(self, members, d.dial)
	eng, err := NewCooperative(self, d.shards[self-1], threshold, agents, coord)
	require.NoError(t, err)
	return eng
}

func (d *deployment) naive(t *testing.T) *Naive {
	eng, err := NewNaive(d.secret)
	require.NoError(t, err)
	return eng
}

func testTransaction() *transaction.Transaction {
	return &transaction.Transaction{
		BIC:        "BCEELU21",
		AmountBase: 1000,
		AmountAtto: 0,
		Currency:   "EUR",
		Seconds:    1700000000,
		Nanos:      0,
		WWD:        transaction.Date{Year: 2023, Month: 11, Day: 14},
	}
}

func TestNaiveCooperativeEquality(t *testing.T) {
	d := newDeployment(t, 3, 5)
	reference, err := Fingerprint(context.Background(), d.naive(t), testTransaction())
	require.NoError(t, err)

	subsets := [][]int{
		{1, 2, 3}, {1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
		{1, 4, 5}, {2, 3, 4}, {2, 3, 5}, {2, 4, 5}, {3, 4, 5},
	}
	for _, subset := range subsets {
		eng := d.engine(t, subset[0], 3, 5, subset)
		fp, err := Fingerprint(context.Background(), eng, testTransaction())
		require.NoError(t, err, "subset %v", subset)
		require.Equal(t, reference, fp, "subset %v", subset)
	}
}

func TestDeterminismAcrossRuns(t *testing.T) {
	d := newDeployment(t, 3, 5)
	eng := d.engine(t, 1, 3, 5, []int{1, 2, 3, 4, 5})

	first, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)
	for i := 0; i < 99; i++ {
		fp, err := Fingerprint(context.Background(), eng, testTransaction())
		require.NoError(t, err)
		require.Equal(t, first, fp, "run %d", i)
	}
}

func TestCollisionFreedom(t *testing.T) {
	d := newDeployment(t, 3, 5)
	eng := d.engine(t, 1, 3, 5, []int{1, 2, 3, 4, 5})

	a, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)
	tx := testTransaction()
	tx.AmountBase++
	b, err := Fingerprint(context.Background(), eng, tx)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestThresholdOneDegeneratesToNaive(t *testing.T) {
	d := newDeployment(t, 1, 3)
	reference, err := Fingerprint(context.Background(), d.naive(t), testTransaction())
	require.NoError(t, err)

	// With threshold 1 every share is the secret and no peer is contacted.
	for _, p := range d.peers {
		p.down = true
	}
	eng := d.engine(t, 2, 1, 3, []int{1, 2, 3})
	fp, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)
	require.Equal(t, reference, fp)
}

func TestThresholdEqualsAgents(t *testing.T) {
	d := newDeployment(t, 3, 3)
	reference, err := Fingerprint(context.Background(), d.naive(t), testTransaction())
	require.NoError(t, err)

	eng := d.engine(t, 1, 3, 3, []int{1, 2, 3})
	fp, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)
	require.Equal(t, reference, fp)

	// All peers are required: one failure fails the request.
	d.peers[address(3)].down = true
	_, err = Fingerprint(context.Background(), eng, testTransaction())
	require.ErrorIs(t, err, ErrQuorumLost)
}

func TestQuorumLossAndRecovery(t *testing.T) {
	d := newDeployment(t, 3, 5)
	eng := d.engine(t, 1, 3, 5, []int{1, 2, 3, 4, 5})
	reference, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)

	// n-t+1 peers down leaves only t-1 live agents.
	for _, id := range []int{3, 4, 5} {
		d.peers[address(id)].down = true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = Fingerprint(ctx, eng, testTransaction())
	require.ErrorIs(t, err, ErrQuorumLost)
	require.True(t, Retriable(err))

	// One restored peer restores the quorum.
	d.peers[address(4)].down = false
	fp, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)
	require.Equal(t, reference, fp)
}

func TestMisbehavingPeerCorruptsOutput(t *testing.T) {
	d := newDeployment(t, 3, 5)
	reference, err := Fingerprint(context.Background(), d.naive(t), testTransaction())
	require.NoError(t, err)

	// A peer answering [s+1]B silently corrupts the fingerprint; detecting
	// this is out of scope, the harness only shows the mismatch.
	d.peers[address(2)].tamper = true
	eng := d.engine(t, 1, 3, 5, []int{1, 2, 3})
	fp, err := Fingerprint(context.Background(), eng, testTransaction())
	require.NoError(t, err)
	require.NotEqual(t, reference, fp)
}

func TestFingerprintInvalidInput(t *testing.T) {
	d := newDeployment(t, 1, 1)
	tx := testTransaction()
	tx.BIC = "nope"
	_, err := Fingerprint(context.Background(), d.naive(t), tx)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.False(t, Retriable(err))
}

func TestNewEngineValidation(t *testing.T) {
	_, err := NewNaive(nil)
	require.ErrorIs(t, err, ErrInvalidShareMaterial)
	_, err = NewNaive(fingerprinting.Suite.Scalar().Zero())
	require.ErrorIs(t, err, ErrInvalidShareMaterial)

	shard := fingerprinting.Suite.Scalar().SetInt64(3)
	_, err = NewCooperative(1, shard, 4, 3, nil)
	require.ErrorIs(t, err, ErrInvalidShareMaterial)
	_, err = NewCooperative(0, shard, 2, 3, nil)
	require.ErrorIs(t, err, ErrInvalidShareMaterial)
	_, err = NewCooperative(1, fingerprinting.Suite.Scalar().Zero(), 2, 3, nil)
	require.ErrorIs(t, err, ErrInvalidShareMaterial)
}

func TestBlindingFactorSampling(t *testing.T) {
	zero := fingerprinting.Suite.Scalar().Zero()
	seen := make([]kyber.Scalar, 0, 16)
	for i := 0; i < 16; i++ {
		r := nonZeroScalar()
		require.False(t, r.Equal(zero))
		for _, prev := range seen {
			require.False(t, r.Equal(prev))
		}
		seen = append(seen, r)
	}
}
