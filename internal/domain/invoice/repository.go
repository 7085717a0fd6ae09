package invoice

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/repository"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Repository is the in-memory collection of invoices
type Repository struct {
	*repository.Store[*Invoice]
}

// NewRepository creates an empty invoice repository
func NewRepository() *Repository {
	return &Repository{Store: repository.NewStore[*Invoice]()}
}

// NewRepositoryFromRecords builds a repository from a parsed record source.
// Any malformed record fails the whole construction.
func NewRepositoryFromRecords(records []loader.Record) (*Repository, error) {
	r := NewRepository()
	for _, rec := range records {
		inv, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := r.Add(inv); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// CreateParams are the attributes accepted when creating an invoice.
// Absent attributes default to blank or zero.
type CreateParams struct {
	CustomerID int
	MerchantID int
	Status     types.InvoiceStatus
}

// Create appends a new invoice with the next available id
func (r *Repository) Create(params CreateParams) *Invoice {
	inv := &Invoice{
		CustomerID: params.CustomerID,
		MerchantID: params.MerchantID,
		Status:     params.Status,
		BaseModel:  types.NewBaseModel(),
	}
	r.Insert(inv)
	return inv
}

// UpdateParams are the attributes accepted when updating an invoice.
// Only non-nil attributes are applied.
type UpdateParams struct {
	Status *types.InvoiceStatus
}

// Update applies the supplied attributes to the invoice with the given id.
// Unknown ids are a silent no-op.
func (r *Repository) Update(id int, params UpdateParams) {
	r.Store.Update(id, func(inv *Invoice) {
		if params.Status != nil {
			inv.Status = *params.Status
		}
	})
}

// FindAllByCustomerID returns all invoices placed by the given customer
func (r *Repository) FindAllByCustomerID(customerID int) []*Invoice {
	return r.Where(func(inv *Invoice) bool {
		return inv.CustomerID == customerID
	})
}

// FindAllByMerchantID returns all invoices addressed to the given merchant
func (r *Repository) FindAllByMerchantID(merchantID int) []*Invoice {
	return r.Where(func(inv *Invoice) bool {
		return inv.MerchantID == merchantID
	})
}

// FindAllByStatus returns all invoices in the given status
func (r *Repository) FindAllByStatus(status types.InvoiceStatus) []*Invoice {
	return r.Where(func(inv *Invoice) bool {
		return inv.Status == status
	})
}
