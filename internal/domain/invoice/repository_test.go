package invoice

import (
	"testing"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord(t *testing.T) {
	rec := loader.Record{
		"id":          "6",
		"customer_id": "1",
		"merchant_id": "12335938",
		"status":      "shipped",
		"created_at":  "2009-02-07",
		"updated_at":  "2014-03-15",
	}

	inv, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 6, inv.ID)
	assert.Equal(t, 12335938, inv.MerchantID)
	assert.Equal(t, types.InvoiceStatusShipped, inv.Status)
}

func TestFromRecordRejectsUnknownStatus(t *testing.T) {
	rec := loader.Record{
		"id":          "6",
		"customer_id": "1",
		"merchant_id": "12335938",
		"status":      "lost",
		"created_at":  "2009-02-07",
		"updated_at":  "2014-03-15",
	}

	_, err := FromRecord(rec)
	require.Error(t, err)
}

func TestFindAllByStatus(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{CustomerID: 1, MerchantID: 10, Status: types.InvoiceStatusPending})
	r.Create(CreateParams{CustomerID: 2, MerchantID: 10, Status: types.InvoiceStatusShipped})
	r.Create(CreateParams{CustomerID: 1, MerchantID: 11, Status: types.InvoiceStatusPending})

	pending := r.FindAllByStatus(types.InvoiceStatusPending)
	require.Len(t, pending, 2)

	assert.Empty(t, r.FindAllByStatus(types.InvoiceStatusReturned))
}

func TestFindAllByCustomerAndMerchant(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{CustomerID: 1, MerchantID: 10, Status: types.InvoiceStatusPending})
	r.Create(CreateParams{CustomerID: 2, MerchantID: 10, Status: types.InvoiceStatusShipped})
	r.Create(CreateParams{CustomerID: 1, MerchantID: 11, Status: types.InvoiceStatusPending})

	assert.Len(t, r.FindAllByCustomerID(1), 2)
	assert.Len(t, r.FindAllByMerchantID(10), 2)
	assert.Empty(t, r.FindAllByMerchantID(99))
}

func TestUpdateStatus(t *testing.T) {
	r := NewRepository()
	inv := r.Create(CreateParams{CustomerID: 1, MerchantID: 10, Status: types.InvoiceStatusPending})

	r.Update(inv.ID, UpdateParams{Status: lo.ToPtr(types.InvoiceStatusShipped)})
	assert.Equal(t, types.InvoiceStatusShipped, inv.Status)

	// unknown ids are a silent no-op
	r.Update(999, UpdateParams{Status: lo.ToPtr(types.InvoiceStatusReturned)})
	assert.Equal(t, 1, r.Len())
}

func TestLineItemFromRecord(t *testing.T) {
	rec := loader.Record{
		"id":         "1",
		"item_id":    "263519844",
		"invoice_id": "1",
		"quantity":   "5",
		"unit_price": "13635",
		"created_at": "2012-03-27 14:54:09 UTC",
		"updated_at": "2012-03-27 14:54:09 UTC",
	}

	li, err := LineItemFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 263519844, li.ItemID)
	assert.Equal(t, 5, li.Quantity)
	assert.Equal(t, "136.35", li.UnitPrice.StringFixed(2))
	assert.Equal(t, "681.75", li.Total().StringFixed(2))
}

func TestLineItemFromRecordRejectsZeroQuantity(t *testing.T) {
	rec := loader.Record{
		"id":         "1",
		"item_id":    "263519844",
		"invoice_id": "1",
		"quantity":   "0",
		"unit_price": "13635",
		"created_at": "2012-03-27 14:54:09 UTC",
		"updated_at": "2012-03-27 14:54:09 UTC",
	}

	_, err := LineItemFromRecord(rec)
	require.Error(t, err)
}

func TestTotalForInvoice(t *testing.T) {
	r := NewLineItemRepository()
	r.Create(LineItemCreateParams{ItemID: 1, InvoiceID: 1, Quantity: 2, UnitPrice: types.MoneyFromCents(2000)})
	r.Create(LineItemCreateParams{ItemID: 2, InvoiceID: 1, Quantity: 1, UnitPrice: types.MoneyFromCents(4000)})
	r.Create(LineItemCreateParams{ItemID: 3, InvoiceID: 2, Quantity: 9, UnitPrice: types.MoneyFromCents(9999)})

	assert.Equal(t, "80.00", r.TotalForInvoice(1).StringFixed(2))
	assert.True(t, r.TotalForInvoice(99).IsZero())
}

func TestFindAllByItemID(t *testing.T) {
	r := NewLineItemRepository()
	r.Create(LineItemCreateParams{ItemID: 1, InvoiceID: 1, Quantity: 2, UnitPrice: types.MoneyFromCents(2000)})
	r.Create(LineItemCreateParams{ItemID: 1, InvoiceID: 2, Quantity: 1, UnitPrice: types.MoneyFromCents(2000)})
	r.Create(LineItemCreateParams{ItemID: 2, InvoiceID: 2, Quantity: 1, UnitPrice: types.MoneyFromCents(4000)})

	assert.Len(t, r.FindAllByItemID(1), 2)
	assert.Empty(t, r.FindAllByItemID(99))
}
