package customer

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Customer represents a buyer referenced by invoices
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	types.BaseModel
}

// FromRecord builds a Customer from a parsed record source row
func FromRecord(rec loader.Record) (*Customer, error) {
	id, err := rec.Int("id")
	if err != nil {
		return nil, err
	}
	firstName, err := rec.String("first_name")
	if err != nil {
		return nil, err
	}
	lastName, err := rec.String("last_name")
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

	return &Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
	}, nil
}

func (c *Customer) EntityID() int {
	return c.ID
}

// Renumber assigns the store-chosen id on insert
func (c *Customer) Renumber(id int) {
	c.ID = id
}

// SetFirstName updates the first name in place and refreshes the
// modification timestamp
func (c *Customer) SetFirstName(firstName string) {
	c.FirstName = firstName
	c.Touch()
}

// SetLastName updates the last name in place and refreshes the
// modification timestamp
func (c *Customer) SetLastName(lastName string) {
	c.LastName = lastName
	c.Touch()
}
