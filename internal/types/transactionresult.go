package types

import (
	"fmt"

	"github.com/samber/lo"
)

// TransactionResult represents the outcome of a credit card transaction
type TransactionResult string

const (
	TransactionResultSuccess TransactionResult = "success"
	TransactionResultFailed  TransactionResult = "failed"
)

func (r TransactionResult) String() string {
	return string(r)
}

func (r TransactionResult) Validate() error {
	allowed := []TransactionResult{
		TransactionResultSuccess,
		TransactionResultFailed,
	}
	if !lo.Contains(allowed, r) {
		return fmt.Errorf("invalid transaction result: %s", r)
	}
	return nil
}

// ParseTransactionResult coerces a raw record value into a TransactionResult
func ParseTransactionResult(raw string) (TransactionResult, error) {
	r := TransactionResult(raw)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}
