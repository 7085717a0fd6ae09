package types

import (
	"fmt"

	"github.com/samber/lo"
)

// InvoiceStatus represents the fulfillment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusShipped  InvoiceStatus = "shipped"
	InvoiceStatusReturned InvoiceStatus = "returned"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusPending,
		InvoiceStatusShipped,
		InvoiceStatusReturned,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid invoice status: %s", s)
	}
	return nil
}

// ParseInvoiceStatus coerces a raw record value into an InvoiceStatus
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	s := InvoiceStatus(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}
