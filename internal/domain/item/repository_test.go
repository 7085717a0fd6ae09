package item

import (
	"testing"

	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pencilRecord() loader.Record {
	return loader.Record{
		"id":          "1",
		"name":        "Pencil",
		"description": "You can use it to write things",
		"unit_price":  "1099",
		"merchant_id": "2",
		"created_at":  "2019-12-01",
		"updated_at":  "2019-12-01",
	}
}

func TestFromRecord(t *testing.T) {
	i, err := FromRecord(pencilRecord())
	require.NoError(t, err)

	assert.Equal(t, 1, i.ID)
	assert.Equal(t, "Pencil", i.Name)
	assert.Equal(t, 2, i.MerchantID)
	assert.True(t, i.UnitPrice.Equal(decimal.RequireFromString("10.99")))
	assert.Equal(t, 10.99, i.UnitPriceToDollars())
}

func TestFromRecordRejectsNegativePrice(t *testing.T) {
	rec := pencilRecord()
	rec["unit_price"] = "-100"

	_, err := FromRecord(rec)
	require.Error(t, err)
}

func TestFromRecordRejectsMissingField(t *testing.T) {
	rec := pencilRecord()
	delete(rec, "merchant_id")

	_, err := FromRecord(rec)
	require.Error(t, err)
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	r := NewRepository()
	r.Create(CreateParams{
		Name:        "Pencil",
		Description: "You can use it to write things",
		UnitPrice:   types.MoneyFromCents(1099),
		MerchantID:  2,
	})
	r.Create(CreateParams{
		Name:        "Pen",
		Description: "Writes with ink",
		UnitPrice:   types.MoneyFromCents(1299),
		MerchantID:  2,
	})
	r.Create(CreateParams{
		Name:        "Notebook",
		Description: "Collects what you write",
		UnitPrice:   types.MoneyFromCents(599),
		MerchantID:  3,
	})
	return r
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	r := newTestRepository(t)

	i, ok := r.FindByName("pENciL")
	require.True(t, ok)
	assert.Equal(t, "Pencil", i.Name)

	_, ok = r.FindByName("Stapler")
	assert.False(t, ok)
}

func TestFindAllWithDescription(t *testing.T) {
	r := newTestRepository(t)

	matches := r.FindAllWithDescription("WRITE")
	require.Len(t, matches, 2)
	assert.Equal(t, "Pencil", matches[0].Name)
	assert.Equal(t, "Notebook", matches[1].Name)

	assert.Empty(t, r.FindAllWithDescription("cooking"))
}

func TestFindAllByPrice(t *testing.T) {
	r := newTestRepository(t)

	matches := r.FindAllByPrice(types.MoneyFromCents(1099))
	require.Len(t, matches, 1)
	assert.Equal(t, "Pencil", matches[0].Name)

	assert.Empty(t, r.FindAllByPrice(types.MoneyFromCents(599+1)))
}

func TestFindAllByPriceInRange(t *testing.T) {
	r := newTestRepository(t)

	matches := r.FindAllByPriceInRange(types.MoneyFromCents(1000), types.MoneyFromCents(1300))
	require.Len(t, matches, 2)
	assert.Equal(t, "Pencil", matches[0].Name)
	assert.Equal(t, "Pen", matches[1].Name)

	// bounds are inclusive
	exact := r.FindAllByPriceInRange(types.MoneyFromCents(599), types.MoneyFromCents(599))
	require.Len(t, exact, 1)
	assert.Equal(t, "Notebook", exact[0].Name)
}

func TestFindAllByMerchantID(t *testing.T) {
	r := newTestRepository(t)

	assert.Len(t, r.FindAllByMerchantID(2), 2)
	assert.Len(t, r.FindAllByMerchantID(3), 1)
	assert.Empty(t, r.FindAllByMerchantID(99))
}

func TestUpdateAppliesOnlySuppliedAttributes(t *testing.T) {
	r := newTestRepository(t)

	r.Update(1, UpdateParams{UnitPrice: lo.ToPtr(types.MoneyFromCents(2500))})

	i, ok := r.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "Pencil", i.Name)
	assert.True(t, i.UnitPrice.Equal(types.MoneyFromCents(2500)))
}

func TestCreateThenFindByID(t *testing.T) {
	r := newTestRepository(t)
	lenBefore := r.Len()

	created := r.Create(CreateParams{Name: "Stapler", UnitPrice: types.MoneyFromCents(450), MerchantID: 3})

	found, ok := r.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Stapler", found.Name)
	assert.True(t, found.UnitPrice.Equal(types.MoneyFromCents(450)))
	assert.Equal(t, lenBefore+1, r.Len())
}
