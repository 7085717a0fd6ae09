package transaction

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Transaction represents a credit card charge attempt against an invoice
type Transaction struct {
	ID                       int                     `json:"id"`
	InvoiceID                int                     `json:"invoice_id"`
	CreditCardNumber         string                  `json:"credit_card_number"`
	CreditCardExpirationDate string                  `json:"credit_card_expiration_date"`
	Result                   types.TransactionResult `json:"result"`
	types.BaseModel
}

// FromRecord builds a Transaction from a parsed record source row
func FromRecord(rec loader.Record) (*Transaction, error) {
	id, err := rec.Int("id")
	if err != nil {
		return nil, err
	}
	invoiceID, err := rec.Int("invoice_id")
	if err != nil {
		return nil, err
	}
	ccNumber, err := rec.String("credit_card_number")
	if err != nil {
		return nil, err
	}
	ccExpiration, err := rec.String("credit_card_expiration_date")
	if err != nil {
		return nil, err
	}
	rawResult, err := rec.String("result")
	if err != nil {
		return nil, err
	}
	result, err := types.ParseTransactionResult(rawResult)
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

	return &Transaction{
		ID:                       id,
		InvoiceID:                invoiceID,
		CreditCardNumber:         ccNumber,
		CreditCardExpirationDate: ccExpiration,
		Result:                   result,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
	}, nil
}

func (t *Transaction) EntityID() int {
	return t.ID
}

// Renumber assigns the store-chosen id on insert
func (t *Transaction) Renumber(id int) {
	t.ID = id
}

// Succeeded reports whether the charge went through
func (t *Transaction) Succeeded() bool {
	return t.Result == types.TransactionResultSuccess
}

// SetResult updates the result in place and refreshes the modification
// timestamp
func (t *Transaction) SetResult(result types.TransactionResult) {
	t.Result = result
	t.Touch()
}
