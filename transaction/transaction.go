// Package transaction defines the transaction tuple a fingerprint is computed
// over, its validation rules and its canonical serialization.
package transaction

import (
	"fmt"
	"time"
)

// Date is a calendar date, the transaction's world-wide day.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// Transaction is the tuple a fingerprint identifies. Amounts are unsigned
// base units plus a 10^-18 sub-unit part; the instant is seconds and
// nanoseconds since the Unix epoch, UTC.
type Transaction struct {
	BIC        string
	AmountBase uint64
	AmountAtto uint64
	Currency   string
	Seconds    uint64
	Nanos      uint64
	WWD        Date
}

// Validate checks every field against its ISO constraints and reports the
// first violation with the field name.
func (t *Transaction) Validate() error {
	if err := validateBIC(t.BIC); err != nil {
		return err
	}
	if err := validateCurrency(t.Currency); err != nil {
		return err
	}
	if t.Nanos >= 1e9 {
		return fmt.Errorf("date_time: nanos %d out of range", t.Nanos)
	}
	return t.WWD.validate()
}

// validateBIC checks ISO 9362: 4 letters institution code, 2 letters country
// code, 2 alphanumeric location code and an optional 3 alphanumeric branch
// code.
func validateBIC(bic string) error {
	if len(bic) != 8 && len(bic) != 11 {
		return fmt.Errorf("bic: must be 8 or 11 characters, got %d", len(bic))
	}
	for i := 0; i < len(bic); i++ {
		c := bic[i]
		if i < 6 {
			if c < 'A' || c > 'Z' {
				return fmt.Errorf("bic: position %d must be an uppercase letter", i+1)
			}
			continue
		}
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return fmt.Errorf("bic: position %d must be alphanumeric", i+1)
		}
	}
	return nil
}

func validateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("currency: must be 3 characters, got %d", len(code))
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return fmt.Errorf("currency: must be uppercase letters")
		}
	}
	return nil
}

func (d Date) validate() error {
	if d.Year < 1970 || d.Year > 9999 {
		return fmt.Errorf("wwd: year %d out of range", d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("wwd: month %d out of range", d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("wwd: day %d out of range", d.Day)
	}
	// Reject days the month does not have.
	norm := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
	if norm.Day() != int(d.Day) || norm.Month() != time.Month(d.Month) {
		return fmt.Errorf("wwd: %04d-%02d-%02d is not a valid date", d.Year, d.Month, d.Day)
	}
	return nil
}
