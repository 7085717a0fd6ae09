package invoice

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Invoice represents an order placed by a customer with a merchant. Line
// items and transactions reference the invoice by id from their own
// repositories; the invoice holds no owning pointers back.
type Invoice struct {
	ID         int                 `json:"id"`
	CustomerID int                 `json:"customer_id"`
	MerchantID int                 `json:"merchant_id"`
	Status     types.InvoiceStatus `json:"status"`
	types.BaseModel
}

// FromRecord builds an Invoice from a parsed record source row
func FromRecord(rec loader.Record) (*Invoice, error) {
	id, err := rec.Int("id")
	if err != nil {
		return nil, err
	}
	customerID, err := rec.Int("customer_id")
	if err != nil {
		return nil, err
	}
	merchantID, err := rec.Int("merchant_id")
	if err != nil {
		return nil, err
	}
	rawStatus, err := rec.String("status")
	if err != nil {
		return nil, err
	}
	status, err := types.ParseInvoiceStatus(rawStatus)
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

	return &Invoice{
		ID:         id,
		CustomerID: customerID,
		MerchantID: merchantID,
		Status:     status,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
	}, nil
}

func (i *Invoice) EntityID() int {
	return i.ID
}

// Renumber assigns the store-chosen id on insert
func (i *Invoice) Renumber(id int) {
	i.ID = id
}

// SetStatus updates the status in place and refreshes the modification
// timestamp
func (i *Invoice) SetStatus(status types.InvoiceStatus) {
	i.Status = status
	i.Touch()
}
