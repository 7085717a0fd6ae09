package invoice

import (
	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem represents one item position on an invoice. UnitPrice is the
// price at time of sale and may differ from the item's current listing
// price.
type LineItem struct {
	ID        int             `json:"id"`
	ItemID    int             `json:"item_id"`
	InvoiceID int             `json:"invoice_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	types.BaseModel
}

// LineItemFromRecord builds a LineItem from a parsed record source row
func LineItemFromRecord(rec loader.Record) (*LineItem, error) {
	id, err := rec.Int("id")
	if err != nil {
		return nil, err
	}
	itemID, err := rec.Int("item_id")
	if err != nil {
		return nil, err
	}
	invoiceID, err := rec.Int("invoice_id")
	if err != nil {
		return nil, err
	}
	quantity, err := rec.Int("quantity")
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ierr.NewErrorf("invoice line item %d: quantity must be positive", id).
			Mark(ierr.ErrValidation)
	}
	unitPrice, err := rec.Cents("unit_price")
	if err != nil {
		return nil, err
	}
	createdAt, err := rec.Time("created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := rec.Time("updated_at")
	if err != nil {
		return nil, err
	}

	return &LineItem{
		ID:        id,
		ItemID:    itemID,
		InvoiceID: invoiceID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
	}, nil
}

func (li *LineItem) EntityID() int {
	return li.ID
}

// Renumber assigns the store-chosen id on insert
func (li *LineItem) Renumber(id int) {
	li.ID = id
}

// Total returns quantity times unit price
func (li *LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SetQuantity updates the quantity in place and refreshes the modification
// timestamp
func (li *LineItem) SetQuantity(quantity int) {
	li.Quantity = quantity
	li.Touch()
}

// SetUnitPrice updates the unit price in place and refreshes the
// modification timestamp
func (li *LineItem) SetUnitPrice(unitPrice decimal.Decimal) {
	li.UnitPrice = unitPrice
	li.Touch()
}
