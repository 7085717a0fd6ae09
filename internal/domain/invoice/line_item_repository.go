package invoice

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/repository"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/shopspring/decimal"
)

// LineItemRepository is the in-memory collection of invoice line items
type LineItemRepository struct {
	*repository.Store[*LineItem]
}

// NewLineItemRepository creates an empty line item repository
func NewLineItemRepository() *LineItemRepository {
	return &LineItemRepository{Store: repository.NewStore[*LineItem]()}
}

// NewLineItemRepositoryFromRecords builds a repository from a parsed record
// source. Any malformed record fails the whole construction.
func NewLineItemRepositoryFromRecords(records []loader.Record) (*LineItemRepository, error) {
	r := NewLineItemRepository()
	for _, rec := range records {
		li, err := LineItemFromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := r.Add(li); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LineItemCreateParams are the attributes accepted when creating a line
// item. Absent attributes default to blank or zero.
type LineItemCreateParams struct {
	ItemID    int
	InvoiceID int
	Quantity  int
	UnitPrice decimal.Decimal
}

// Create appends a new line item with the next available id
func (r *LineItemRepository) Create(params LineItemCreateParams) *LineItem {
	li := &LineItem{
		ItemID:    params.ItemID,
		InvoiceID: params.InvoiceID,
		Quantity:  params.Quantity,
		UnitPrice: params.UnitPrice,
		BaseModel: types.NewBaseModel(),
	}
	r.Insert(li)
	return li
}

// LineItemUpdateParams are the attributes accepted when updating a line
// item. Only non-nil attributes are applied.
type LineItemUpdateParams struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// Update applies the supplied attributes to the line item with the given id.
// Unknown ids are a silent no-op.
func (r *LineItemRepository) Update(id int, params LineItemUpdateParams) {
	r.Store.Update(id, func(li *LineItem) {
		if params.Quantity != nil {
			li.Quantity = *params.Quantity
		}
		if params.UnitPrice != nil {
			li.UnitPrice = *params.UnitPrice
		}
	})
}

// FindAllByInvoiceID returns all line items on the given invoice
func (r *LineItemRepository) FindAllByInvoiceID(invoiceID int) []*LineItem {
	return r.Where(func(li *LineItem) bool {
		return li.InvoiceID == invoiceID
	})
}

// FindAllByItemID returns all line items referencing the given item
func (r *LineItemRepository) FindAllByItemID(itemID int) []*LineItem {
	return r.Where(func(li *LineItem) bool {
		return li.ItemID == itemID
	})
}

// TotalForInvoice returns the sum of quantity times unit price over all line
// items on the given invoice
func (r *LineItemRepository) TotalForInvoice(invoiceID int) decimal.Decimal {
	total := decimal.Zero
	for _, li := range r.FindAllByInvoiceID(invoiceID) {
		total = total.Add(li.Total())
	}
	return total
}
