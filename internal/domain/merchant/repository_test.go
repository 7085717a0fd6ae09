package merchant

import (
	"testing"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryFromRecords(t *testing.T) {
	records := []loader.Record{
		{"id": "12334105", "name": "Shopin1901"},
		{"id": "12334112", "name": "Candisart"},
	}

	r, err := NewRepositoryFromRecords(records)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	m, ok := r.FindByID(12334112)
	require.True(t, ok)
	assert.Equal(t, "Candisart", m.Name)
}

func TestNewRepositoryFromRecordsMalformed(t *testing.T) {
	records := []loader.Record{
		{"id": "one", "name": "Shopin1901"},
	}

	_, err := NewRepositoryFromRecords(records)
	require.Error(t, err)
}

func TestCreateAssignsNextID(t *testing.T) {
	r := NewRepository()

	first := r.Create(CreateParams{Name: "Shopin1901"})
	assert.Equal(t, 1, first.ID)

	second := r.Create(CreateParams{Name: "Candisart"})
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, r.Len())

	found, ok := r.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "Candisart", found.Name)
}

func TestCreateDefaultsAbsentAttributes(t *testing.T) {
	r := NewRepository()

	m := r.Create(CreateParams{})
	assert.Equal(t, 1, m.ID)
	assert.Empty(t, m.Name)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestUpdate(t *testing.T) {
	r := NewRepository()
	m := r.Create(CreateParams{Name: "Shopin1901"})

	r.Update(m.ID, UpdateParams{Name: lo.ToPtr("Shopin2001")})
	assert.Equal(t, "Shopin2001", m.Name)

	// nil attributes leave fields untouched
	r.Update(m.ID, UpdateParams{})
	assert.Equal(t, "Shopin2001", m.Name)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{Name: "Shopin1901"})

	before := r.All()
	r.Update(99, UpdateParams{Name: lo.ToPtr("never")})
	assert.Equal(t, before, r.All())
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{Name: "Shopin1901"})

	before := r.All()
	r.Remove(99)
	assert.Equal(t, before, r.All())
}

func TestFindByName(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{Name: "Shopin1901"})

	m, ok := r.FindByName("sHoPiN1901")
	require.True(t, ok)
	assert.Equal(t, "Shopin1901", m.Name)

	_, ok = r.FindByName("nope")
	assert.False(t, ok)
}

func TestFindAllByName(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{Name: "Shopin1901"})
	r.Create(CreateParams{Name: "Candisart"})
	r.Create(CreateParams{Name: "MiniatureBikez"})

	matches := r.FindAllByName("IN")
	require.Len(t, matches, 2)
	assert.Equal(t, "Shopin1901", matches[0].Name)
	assert.Equal(t, "MiniatureBikez", matches[1].Name)

	assert.Empty(t, r.FindAllByName("zzz"))
}
