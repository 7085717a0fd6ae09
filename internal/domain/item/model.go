package item

import (
	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/shopspring/decimal"
)

// Item represents a product sold by a merchant. UnitPrice is the current
// listing price; line items carry their own price at time of sale.
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	MerchantID  int             `json:"merchant_id"`
	types.BaseModel
}

// FromRecord builds an Item from a parsed record source row. The unit price
// arrives as integer minor currency units and is converted to a decimal
// amount.
func FromRecord(rec loader.Record) (*Item, error) {
	id, err := rec.Int("id")
	if err != nil {
		return nil, err
	}
	name, err := rec.String("name")
	if err != nil {
		return nil, err
	}
	description, err := rec.String("description")
	if err != nil {
		return nil, err
	}
	unitPrice, err := rec.Cents("unit_price")
	if err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, ierr.NewErrorf("item %d: unit_price must be non negative", id).
			Mark(ierr.ErrValidation)
	}
	merchantID, err := rec.Int("merchant_id")
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

	return &Item{
		ID:          id,
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		MerchantID:  merchantID,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
	}, nil
}

func (i *Item) EntityID() int {
	return i.ID
}

// Renumber assigns the store-chosen id on insert
func (i *Item) Renumber(id int) {
	i.ID = id
}

// UnitPriceToDollars returns the unit price as a float dollar amount
func (i *Item) UnitPriceToDollars() float64 {
	return i.UnitPrice.InexactFloat64()
}

// SetName updates the name in place and refreshes the modification timestamp
func (i *Item) SetName(name string) {
	i.Name = name
	i.Touch()
}

// SetDescription updates the description in place and refreshes the
// modification timestamp
func (i *Item) SetDescription(description string) {
	i.Description = description
	i.Touch()
}

// SetUnitPrice updates the unit price in place and refreshes the
// modification timestamp
func (i *Item) SetUnitPrice(unitPrice decimal.Decimal) {
	i.UnitPrice = unitPrice
	i.Touch()
}
