package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTransaction() *Transaction {
	return &Transaction{
		BIC:        "BCEELU21",
		AmountBase: 1000,
		AmountAtto: 0,
		Currency:   "EUR",
		Seconds:    1700000000,
		Nanos:      0,
		WWD:        Date{Year: 2023, Month: 11, Day: 14},
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validTransaction().Validate())

	tx := validTransaction()
	tx.BIC = "BCEELU21XXX"
	require.NoError(t, tx.Validate())
}

func TestValidateBIC(t *testing.T) {
	for _, bic := range []string{"", "BCEELU2", "BCEELU211", "BCEELU21XX", "BCEELU21XXXX", "1CEELU21", "BCEELU2\x00", "bceelu21"} {
		tx := validTransaction()
		tx.BIC = bic
		require.Error(t, tx.Validate(), "bic %q", bic)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, cur := range []string{"", "EU", "EURO", "eur", "E+R"} {
		tx := validTransaction()
		tx.Currency = cur
		require.Error(t, tx.Validate(), "currency %q", cur)
	}
}

func TestValidateNanos(t *testing.T) {
	tx := validTransaction()
	tx.Nanos = 1e9
	require.Error(t, tx.Validate())
	tx.Nanos = 1e9 - 1
	require.NoError(t, tx.Validate())
}

func TestValidateWWD(t *testing.T) {
	bad := []Date{
		{Year: 1969, Month: 1, Day: 1},
		{Year: 2023, Month: 0, Day: 1},
		{Year: 2023, Month: 13, Day: 1},
		{Year: 2023, Month: 1, Day: 0},
		{Year: 2023, Month: 2, Day: 30},
		{Year: 2023, Month: 4, Day: 31},
	}
	for _, d := range bad {
		tx := validTransaction()
		tx.WWD = d
		require.Error(t, tx.Validate(), "date %v", d)
	}

	tx := validTransaction()
	tx.WWD = Date{Year: 2024, Month: 2, Day: 29}
	require.NoError(t, tx.Validate())
}
