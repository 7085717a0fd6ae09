package customer

import (
	"strings"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/repository"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Repository is the in-memory collection of customers
type Repository struct {
	*repository.Store[*Customer]
}

// NewRepository creates an empty customer repository
func NewRepository() *Repository {
	return &Repository{Store: repository.NewStore[*Customer]()}
}

// NewRepositoryFromRecords builds a repository from a parsed record source.
// Any malformed record fails the whole construction.
func NewRepositoryFromRecords(records []loader.Record) (*Repository, error) {
	r := NewRepository()
	for _, rec := range records {
		c, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := r.Add(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// CreateParams are the attributes accepted when creating a customer.
// Absent attributes default to blank.
type CreateParams struct {
	FirstName string
	LastName  string
}

// Create appends a new customer with the next available id
func (r *Repository) Create(params CreateParams) *Customer {
	c := &Customer{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		BaseModel: types.NewBaseModel(),
	}
	r.Insert(c)
	return c
}

// UpdateParams are the attributes accepted when updating a customer.
// Only non-nil attributes are applied.
type UpdateParams struct {
	FirstName *string
	LastName  *string
}

// Update applies the supplied attributes to the customer with the given id.
// Unknown ids are a silent no-op.
func (r *Repository) Update(id int, params UpdateParams) {
	r.Store.Update(id, func(c *Customer) {
		if params.FirstName != nil {
			c.FirstName = *params.FirstName
		}
		if params.LastName != nil {
			c.LastName = *params.LastName
		}
	})
}

// FindAllByFirstName returns all customers whose first name contains the
// fragment, case-insensitively
func (r *Repository) FindAllByFirstName(fragment string) []*Customer {
	fragment = strings.ToLower(fragment)
	return r.Where(func(c *Customer) bool {
		return strings.Contains(strings.ToLower(c.FirstName), fragment)
	})
}

// FindAllByLastName returns all customers whose last name contains the
// fragment, case-insensitively
func (r *Repository) FindAllByLastName(fragment string) []*Customer {
	fragment = strings.ToLower(fragment)
	return r.Where(func(c *Customer) bool {
		return strings.Contains(strings.ToLower(c.LastName), fragment)
	})
}
