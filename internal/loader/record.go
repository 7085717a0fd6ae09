package loader

import (
	"strconv"
	"time"

	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/shopspring/decimal"
)

// Record is one parsed row of a record source, keyed by column name.
// The typed accessors perform the coercions the engine needs; every
// malformed or missing field is a validation error that fails the load.
type Record map[string]string

// timeLayouts are the timestamp formats accepted from record sources,
// tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r Record) raw(key string) (string, error) {
	value, ok := r[key]
	if !ok {
		return "", ierr.NewErrorf("missing required field %q", key).
			Mark(ierr.ErrValidation)
	}
	return value, nil
}

// String returns a required string field
func (r Record) String(key string) (string, error) {
	return r.raw(key)
}

// Int returns a required integer field
func (r Record) Int(key string) (int, error) {
	value, err := r.raw(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ierr.NewErrorf("field %q: %q is not an integer", key, value).
			Mark(ierr.ErrValidation)
	}
	return n, nil
}

// Cents returns a required price field stored as integer minor currency
// units, converted to a decimal amount (1099 -> 10.99).
func (r Record) Cents(key string) (decimal.Decimal, error) {
	value, err := r.raw(key)
	if err != nil {
		return decimal.Zero, err
	}

	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return decimal.Zero, ierr.NewErrorf("field %q: %q is not an integer amount of cents", key, value).
			Mark(ierr.ErrValidation)
	}
	return decimal.New(cents, -2), nil
}

// Time returns a required timestamp field
func (r Record) Time(key string) (time.Time, error) {
	value, err := r.raw(key)
	if err != nil {
		return time.Time{}, err
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ierr.NewErrorf("field %q: %q is not a parseable timestamp", key, value).
		Mark(ierr.ErrValidation)
}
