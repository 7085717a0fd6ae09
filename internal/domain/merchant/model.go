package merchant

import (
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Merchant represents a seller that owns items and receives invoices
type Merchant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	types.BaseModel
}

// FromRecord builds a Merchant from a parsed record source row
func FromRecord(rec loader.Record) (*Merchant, error) {
	id, err := rec.Int("id")
	if err != nil {
		return nil, err
	}
	name, err := rec.String("name")
	if err != nil {
		return nil, err
	}

	return &Merchant{
		ID:        id,
		Name:      name,
		BaseModel: types.NewBaseModel(),
	}, nil
}

func (m *Merchant) EntityID() int {
	return m.ID
}

// Renumber assigns the store-chosen id on insert
func (m *Merchant) Renumber(id int) {
	m.ID = id
}

// SetName updates the name in place and refreshes the modification timestamp
func (m *Merchant) SetName(name string) {
	m.Name = name
	m.Touch()
}
