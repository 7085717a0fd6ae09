package merchant

import (
	"strings"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/repository"
	"github.com/NoahZinter/black-thursday/internal/types"
)

// Repository is the in-memory collection of merchants
type Repository struct {
	*repository.Store[*Merchant]
}

// NewRepository creates an empty merchant repository
func NewRepository() *Repository {
	return &Repository{Store: repository.NewStore[*Merchant]()}
}

// NewRepositoryFromRecords builds a repository from a parsed record source.
// Any malformed record fails the whole construction.
func NewRepositoryFromRecords(records []loader.Record) (*Repository, error) {
	r := NewRepository()
	for _, rec := range records {
		m, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := r.Add(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// CreateParams are the attributes accepted when creating a merchant.
// Absent attributes default to blank.
type CreateParams struct {
	Name string
}

// Create appends a new merchant with the next available id
func (r *Repository) Create(params CreateParams) *Merchant {
	m := &Merchant{
		Name:      params.Name,
		BaseModel: types.NewBaseModel(),
	}
	r.Insert(m)
	return m
}

// UpdateParams are the attributes accepted when updating a merchant.
// Only non-nil attributes are applied.
type UpdateParams struct {
	Name *string
}

// Update applies the supplied attributes to the merchant with the given id.
// Unknown ids are a silent no-op.
func (r *Repository) Update(id int, params UpdateParams) {
	r.Store.Update(id, func(m *Merchant) {
		if params.Name != nil {
			m.Name = *params.Name
		}
	})
}

// FindByName returns the first merchant whose name matches,
// case-insensitively
func (r *Repository) FindByName(name string) (*Merchant, bool) {
	return r.First(func(m *Merchant) bool {
		return strings.EqualFold(m.Name, name)
	})
}

// FindAllByName returns all merchants whose name contains the fragment,
// case-insensitively
func (r *Repository) FindAllByName(fragment string) []*Merchant {
	fragment = strings.ToLower(fragment)
	return r.Where(func(m *Merchant) bool {
		return strings.Contains(strings.ToLower(m.Name), fragment)
	})
}
