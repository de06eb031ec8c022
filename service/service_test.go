package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/protocol"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
)

func naiveService(t *testing.T) *FingerprintService {
	secret := fingerprinting.Suite.Scalar().Pick(fingerprinting.Suite.RandomStream())
	eng, err := protocol.NewNaive(secret)
	require.NoError(t, err)
	return NewFingerprintService(eng, 0)
}

func wireTransaction() *fpv1.TransactionFingerprintData {
	return &fpv1.TransactionFingerprintData{
		Bic: "BCEELU21",
		Amount: &fpv1.Money{
			AmountBase: 1000,
			AmountAtto: 0,
			Currency:   "EUR",
		},
		DateTime: &fpv1.Timestamp{Seconds: 1700000000, Nanos: 0},
		Wwd:      &fpv1.Date{Year: 2023, Month: 11, Day: 14},
	}
}

func TestGenerateFingerprint(t *testing.T) {
	svc := naiveService(t)

	resp, err := svc.GenerateFingerprint(context.Background(), wireTransaction())
	require.NoError(t, err)
	require.NotEmpty(t, resp.GetValue())

	fp, err := fingerprinting.ParseFingerprint(resp.GetValue())
	require.NoError(t, err)
	require.Len(t, []byte(fp), 32)

	// Deterministic across calls.
	again, err := svc.GenerateFingerprint(context.Background(), wireTransaction())
	require.NoError(t, err)
	require.Equal(t, resp.GetValue(), again.GetValue())
}

func TestGenerateFingerprintMissingFields(t *testing.T) {
	svc := naiveService(t)

	cases := map[string]*fpv1.TransactionFingerprintData{
		"nil request":  nil,
		"no amount":    {Bic: "BCEELU21", DateTime: &fpv1.Timestamp{}, Wwd: &fpv1.Date{Year: 2023, Month: 1, Day: 1}},
		"no date_time": {Bic: "BCEELU21", Amount: &fpv1.Money{Currency: "EUR"}, Wwd: &fpv1.Date{Year: 2023, Month: 1, Day: 1}},
		"no wwd":       {Bic: "BCEELU21", Amount: &fpv1.Money{Currency: "EUR"}, DateTime: &fpv1.Timestamp{}},
	}
	for name, req := range cases {
		_, err := svc.GenerateFingerprint(context.Background(), req)
		require.Error(t, err, name)
		require.Equal(t, codes.InvalidArgument, status.Code(err), name)
	}
}

func TestGenerateFingerprintInvalidFields(t *testing.T) {
	svc := naiveService(t)

	bad := wireTransaction()
	bad.Bic = "SHORT"
	_, err := svc.GenerateFingerprint(context.Background(), bad)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	bad = wireTransaction()
	bad.Amount.Currency = "EURO"
	_, err = svc.GenerateFingerprint(context.Background(), bad)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	bad = wireTransaction()
	bad.Wwd.Year = 100000
	_, err = svc.GenerateFingerprint(context.Background(), bad)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	bad = wireTransaction()
	bad.Wwd.Month = 13
	_, err = svc.GenerateFingerprint(context.Background(), bad)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBICLengthDistinguishes(t *testing.T) {
	svc := naiveService(t)

	a, err := svc.GenerateFingerprint(context.Background(), wireTransaction())
	require.NoError(t, err)

	long := wireTransaction()
	long.Bic = "BCEELU21XXX"
	b, err := svc.GenerateFingerprint(context.Background(), long)
	require.NoError(t, err)
	require.NotEqual(t, a.GetValue(), b.GetValue())
}
