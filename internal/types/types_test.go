package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceStatus(t *testing.T) {
	status, err := ParseInvoiceStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusShipped, status)

	_, err = ParseInvoiceStatus("lost")
	assert.Error(t, err)
}

func TestParseTransactionResult(t *testing.T) {
	result, err := ParseTransactionResult("failed")
	require.NoError(t, err)
	assert.Equal(t, TransactionResultFailed, result)

	_, err = ParseTransactionResult("declined")
	assert.Error(t, err)
}

func TestMoneyFromCents(t *testing.T) {
	assert.True(t, MoneyFromCents(1099).Equal(decimal.RequireFromString("10.99")))
	assert.True(t, MoneyFromCents(0).Equal(decimal.Zero))
}

func TestRoundMoney(t *testing.T) {
	amount := decimal.RequireFromString("10.995")
	assert.Equal(t, "11.00", RoundMoney(amount).StringFixed(2))
}

func TestTouch(t *testing.T) {
	m := NewBaseModel()
	created := m.UpdatedAt
	m.Touch()
	assert.True(t, !m.UpdatedAt.Before(created))
	assert.Equal(t, created, m.CreatedAt)
}
