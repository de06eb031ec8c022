package service

import (
	"errors"
	"fmt"

	"github.com/outbe/fingerprinting/transaction"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
)

// transactionFromWire converts the wire tuple into the protocol transaction,
// checking presence of the nested messages and the ranges the narrow wire
// integers must fit into. Field-level validation happens in the transaction
// package.
func transactionFromWire(req *fpv1.TransactionFingerprintData) (*transaction.Transaction, error) {
	if req == nil {
		return nil, errors.New("transaction data missing")
	}
	amount := req.GetAmount()
	if amount == nil {
		return nil, errors.New("amount missing")
	}
	dateTime := req.GetDateTime()
	if dateTime == nil {
		return nil, errors.New("date_time missing")
	}
	wwd := req.GetWwd()
	if wwd == nil {
		return nil, errors.New("wwd missing")
	}
	if wwd.GetYear() > 0xFFFF {
		return nil, fmt.Errorf("wwd: year %d out of range", wwd.GetYear())
	}
	if wwd.GetMonth() > 0xFF || wwd.GetDay() > 0xFF {
		return nil, errors.New("wwd: month or day out of range")
	}
	return &transaction.Transaction{
		BIC:        req.GetBic(),
		AmountBase: amount.GetAmountBase(),
		AmountAtto: amount.GetAmountAtto(),
		Currency:   amount.GetCurrency(),
		Seconds:    dateTime.GetSeconds(),
		Nanos:      uint64(dateTime.GetNanos()),
		WWD: transaction.Date{
			Year:  uint16(wwd.GetYear()),
			Month: uint8(wwd.GetMonth()),
			Day:   uint8(wwd.GetDay()),
		},
	}, nil
}
