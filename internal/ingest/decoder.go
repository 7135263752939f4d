// Package ingest contains the store-free leaves of the import pipeline:
// delimited-text decoding, date and numeric normalization, and per-row
// validation. Everything here is pure; staging and persistence live in the
// usecase layer.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/iho/finrecords/internal/domain"
)

// Row is one decoded data row, keyed by header column name. Number is the
// 1-based position in the file, counting the header as row 1, so the first
// data row is row 2.
type Row struct {
	Number int
	fields map[string]string
}

// Get returns the raw value of the named column, or the empty string when the
// column is absent from the header or the row was shorter than the header.
func (r Row) Get(column string) string {
	return r.fields[column]
}

// Decoder reads a delimited stream with a header line and yields header-keyed
// rows. It is single-pass; decoding again requires a new Decoder.
type Decoder struct {
	reader *csv.Reader
	header []string
	row    int
}

// NewDecoder reads the header line and prepares the row sequence. A stream
// without a header line fails with domain.ErrMalformedInput.
func NewDecoder(r io.Reader) (*Decoder, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header line: %v", domain.ErrMalformedInput, err)
	}

	return &Decoder{reader: cr, header: header, row: 1}, nil
}

// Header returns the column names in file order.
func (d *Decoder) Header() []string {
	return d.header
}

// Next returns the next data row, or io.EOF when the stream is exhausted.
// Rows shorter than the header yield empty values for the missing trailing
// columns; columns beyond the header are dropped.
func (d *Decoder) Next() (Row, error) {
	record, err := d.reader.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	if err != nil {
		return Row{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	d.row++
	fields := make(map[string]string, len(d.header))
	for i, name := range d.header {
		if i < len(record) {
			fields[name] = record[i]
		} else {
			fields[name] = ""
		}
	}

	return Row{Number: d.row, fields: fields}, nil
}

// DecodeAll decodes the whole stream into data rows.
func DecodeAll(r io.Reader) ([]Row, error) {
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		row, err := dec.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
