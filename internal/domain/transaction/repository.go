package transaction

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/repository"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Repository is the in-memory collection of transactions
type Repository struct {
	*repository.Store[*Transaction]
}

// NewRepository creates an empty transaction repository
func NewRepository() *Repository {
	return &Repository{Store: repository.NewStore[*Transaction]()}
}

// NewRepositoryFromRecords builds a repository from a parsed record source.
// Any malformed record fails the whole construction.
func NewRepositoryFromRecords(records []loader.Record) (*Repository, error) {
	r := NewRepository()
	for _, rec := range records {
		t, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// CreateParams are the attributes accepted when creating a transaction.
// Absent attributes default to blank or zero.
type CreateParams struct {
	InvoiceID                int
	CreditCardNumber         string
	CreditCardExpirationDate string
	Result                   types.TransactionResult
}

// Create appends a new transaction with the next available id
func (r *Repository) Create(params CreateParams) *Transaction {
	t := &Transaction{
		InvoiceID:                params.InvoiceID,
		CreditCardNumber:         params.CreditCardNumber,
		CreditCardExpirationDate: params.CreditCardExpirationDate,
		Result:                   params.Result,
		BaseModel:                types.NewBaseModel(),
	}
	r.Insert(t)
	return t
}

// UpdateParams are the attributes accepted when updating a transaction.
// Only non-nil attributes are applied.
type UpdateParams struct {
	CreditCardNumber         *string
	CreditCardExpirationDate *string
	Result                   *types.TransactionResult
}

// Update applies the supplied attributes to the transaction with the given
// id. Unknown ids are a silent no-op.
func (r *Repository) Update(id int, params UpdateParams) {
	r.Store.Update(id, func(t *Transaction) {
		if params.CreditCardNumber != nil {
			t.CreditCardNumber = *params.CreditCardNumber
		}
		if params.CreditCardExpirationDate != nil {
			t.CreditCardExpirationDate = *params.CreditCardExpirationDate
		}
		if params.Result != nil {
			t.Result = *params.Result
		}
	})
}

// FindAllByInvoiceID returns all transactions charged against the given
// invoice
func (r *Repository) FindAllByInvoiceID(invoiceID int) []*Transaction {
	return r.Where(func(t *Transaction) bool {
		return t.InvoiceID == invoiceID
	})
}

// FindAllByCreditCardNumber returns all transactions charged to the given
// card
func (r *Repository) FindAllByCreditCardNumber(ccNumber string) []*Transaction {
	return r.Where(func(t *Transaction) bool {
		return t.CreditCardNumber == ccNumber
	})
}

// AnySuccess reports whether at least one transaction against the given
// invoice succeeded. This is the paid-in-full predicate the analyst uses.
func (r *Repository) AnySuccess(invoiceID int) bool {
	_, ok := r.First(func(t *Transaction) bool {
		return t.InvoiceID == invoiceID && t.Succeeded()
	})
	return ok
}
