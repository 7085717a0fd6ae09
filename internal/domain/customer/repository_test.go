package customer

import (
	"testing"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord(t *testing.T) {
	rec := loader.Record{
		"id":         "1",
		"first_name": "Julia",
		"last_name":  "Child",
		"created_at": "2012-03-27 14:54:09 UTC",
		"updated_at": "2012-03-27 14:54:09 UTC",
	}

	c, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "Julia", c.FirstName)
	assert.Equal(t, "Child", c.LastName)
	assert.Equal(t, 2012, c.CreatedAt.Year())
}

func TestFromRecordRejectsBadTimestamp(t *testing.T) {
	rec := loader.Record{
		"id":         "1",
		"first_name": "Julia",
		"last_name":  "Child",
		"created_at": "not a date",
		"updated_at": "2012-03-27",
	}

	_, err := FromRecord(rec)
	require.Error(t, err)
}

func TestFindAllByFirstName(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{FirstName: "Julia", LastName: "Child"})
	r.Create(CreateParams{FirstName: "Juliet", LastName: "Capulet"})
	r.Create(CreateParams{FirstName: "Romeo", LastName: "Montague"})

	matches := r.FindAllByFirstName("juli")
	require.Len(t, matches, 2)
	assert.Equal(t, "Julia", matches[0].FirstName)

	assert.Empty(t, r.FindAllByFirstName("xavier"))
}

func TestFindAllByLastName(t *testing.T) {
	r := NewRepository()
	r.Create(CreateParams{FirstName: "Julia", LastName: "Child"})
	r.Create(CreateParams{FirstName: "Romeo", LastName: "Montague"})

	matches := r.FindAllByLastName("CHILD")
	require.Len(t, matches, 1)
	assert.Equal(t, "Julia", matches[0].FirstName)
}

func TestUpdateNames(t *testing.T) {
	r := NewRepository()
	c := r.Create(CreateParams{FirstName: "Julia", LastName: "Child"})

	r.Update(c.ID, UpdateParams{LastName: lo.ToPtr("Roberts")})
	assert.Equal(t, "Julia", c.FirstName)
	assert.Equal(t, "Roberts", c.LastName)
}
