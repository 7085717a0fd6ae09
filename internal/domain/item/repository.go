package item

import (
	"strings"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/repository"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/shopspring/decimal"
)

// Repository is the in-memory collection of items
type Repository struct {
	*repository.Store[*Item]
}

// NewRepository creates an empty item repository
func NewRepository() *Repository {
	return &Repository{Store: repository.NewStore[*Item]()}
}

// NewRepositoryFromRecords builds a repository from a parsed record source.
// Any malformed record fails the whole construction.
func NewRepositoryFromRecords(records []loader.Record) (*Repository, error) {
	r := NewRepository()
	for _, rec := range records {
		i, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := r.Add(i); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// CreateParams are the attributes accepted when creating an item.
// Absent attributes default to blank or zero.
type CreateParams struct {
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	MerchantID  int
}

// Create appends a new item with the next available id
func (r *Repository) Create(params CreateParams) *Item {
	i := &Item{
		Name:        params.Name,
		Description: params.Description,
		UnitPrice:   params.UnitPrice,
		MerchantID:  params.MerchantID,
		BaseModel:   types.NewBaseModel(),
	}
	r.Insert(i)
	return i
}

// UpdateParams are the attributes accepted when updating an item.
// Only non-nil attributes are applied; the id and merchant are never
// rewritten through update.
type UpdateParams struct {
	Name        *string
	Description *string
	UnitPrice   *decimal.Decimal
}

// Update applies the supplied attributes to the item with the given id.
// Unknown ids are a silent no-op.
func (r *Repository) Update(id int, params UpdateParams) {
	r.Store.Update(id, func(i *Item) {
		if params.Name != nil {
			i.Name = *params.Name
		}
		if params.Description != nil {
			i.Description = *params.Description
		}
		if params.UnitPrice != nil {
			i.UnitPrice = *params.UnitPrice
		}
	})
}

// FindByName returns the first item whose name matches, case-insensitively
func (r *Repository) FindByName(name string) (*Item, bool) {
	return r.First(func(i *Item) bool {
		return strings.EqualFold(i.Name, name)
	})
}

// FindAllWithDescription returns all items whose description contains the
// fragment, case-insensitively
func (r *Repository) FindAllWithDescription(fragment string) []*Item {
	fragment = strings.ToLower(fragment)
	return r.Where(func(i *Item) bool {
		return strings.Contains(strings.ToLower(i.Description), fragment)
	})
}

// FindAllByPrice returns all items priced at exactly the given amount
func (r *Repository) FindAllByPrice(price decimal.Decimal) []*Item {
	return r.Where(func(i *Item) bool {
		return i.UnitPrice.Equal(price)
	})
}

// FindAllByPriceInRange returns all items priced within the inclusive range
func (r *Repository) FindAllByPriceInRange(min, max decimal.Decimal) []*Item {
	return r.Where(func(i *Item) bool {
		return i.UnitPrice.GreaterThanOrEqual(min) && i.UnitPrice.LessThanOrEqual(max)
	})
}

// FindAllByMerchantID returns all items owned by the given merchant
func (r *Repository) FindAllByMerchantID(merchantID int) []*Item {
	return r.Where(func(i *Item) bool {
		return i.MerchantID == merchantID
	})
}
