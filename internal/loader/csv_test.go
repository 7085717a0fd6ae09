package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := []byte("id,name,unit_price\n1,Pencil,1099\n2,Pen,1299\n")

	records, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Pencil", records[0]["name"])
	assert.Equal(t, "1299", records[1]["unit_price"])
}

func TestParseStripsBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("id,name\n1,Pencil\n")...)

	records, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0]["id"])
}

func TestParseEmptyContent(t *testing.T) {
	_, err := Parse([]byte(""))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "merchants.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n1,Shopin1901\n"), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Shopin1901", records[0]["name"])
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, ierr.IsSystem(err))
}

func TestRecordInt(t *testing.T) {
	rec := Record{"id": "42", "bad": "forty-two"}

	n, err := rec.Int("id")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = rec.Int("bad")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	_, err = rec.Int("missing")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestRecordCents(t *testing.T) {
	rec := Record{"unit_price": "1099", "bad": "10.99"}

	price, err := rec.Cents("unit_price")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("10.99")))

	_, err = rec.Cents("bad")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestRecordTime(t *testing.T) {
	rec := Record{
		"date_only": "2019-12-01",
		"timestamp": "2016-01-11 09:34:06 UTC",
		"rfc3339":   "2016-01-11T09:34:06Z",
		"bad":       "yesterday",
	}

	parsed, err := rec.Time("date_only")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = rec.Time("timestamp")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())

	_, err = rec.Time("rfc3339")
	require.NoError(t, err)

	_, err = rec.Time("bad")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
