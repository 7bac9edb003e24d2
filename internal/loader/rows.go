package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/unclebandit/customer-records/internal/model"
)

// FieldCount is the number of positional columns in a batch file row:
// reference, name, addressLine1, addressLine2, town, county, country, postcode.
const FieldCount = 8

// RowReader yields one CustomerDTO per CSV row. The file has no header row.
type RowReader struct {
	csv *csv.Reader
}

func NewRowReader(r io.Reader) *RowReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = FieldCount
	return &RowReader{csv: cr}
}

// Next returns io.EOF once the input is exhausted. Any other error is a parse or read fault.
func (rr *RowReader) Next() (model.CustomerDTO, error) {
	fields, err := rr.csv.Read()
	if err != nil {
		return model.CustomerDTO{}, err
	}
	return FromFields(fields)
}

// FromFields maps a row positionally onto the wire record.
func FromFields(fields []string) (model.CustomerDTO, error) {
	if len(fields) != FieldCount {
		return model.CustomerDTO{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}
	return model.CustomerDTO{
		CustomerRef:  fields[0],
		CustomerName: fields[1],
		AddressLine1: fields[2],
		AddressLine2: fields[3],
		Town:         fields[4],
		County:       fields[5],
		Country:      fields[6],
		Postcode:     fields[7],
	}, nil
}
