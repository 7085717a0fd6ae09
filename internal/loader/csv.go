// Package loader turns flat CSV files into record maps the engine can build
// entities from. Parsing is the only file I/O in the system and happens once,
// before the engine is constructed.
package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	ierr "github.com/NoahZinter/black-thursday/internal/errors"
)

// ReadFile reads a CSV file with a header row and returns one Record per
// data row, in file order.
func ReadFile(path string) ([]Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to read record source %s", path).
			Mark(ierr.ErrSystem)
	}

	records, err := Parse(content)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("malformed record source %s", path).
			Mark(ierr.ErrValidation)
	}
	return records, nil
}

// Parse decodes CSV content into records keyed by the header row
func Parse(content []byte) ([]Record, error) {
	// Strip BOM if present
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ierr.NewError("record source has no header row").
				Mark(ierr.ErrValidation)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to read header row").
			Mark(ierr.ErrValidation)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("failed to read data row").
				Mark(ierr.ErrValidation)
		}

		record := make(Record, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}
