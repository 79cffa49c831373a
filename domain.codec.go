package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBookFormat reports a record which does not follow the catalog
// text format: `"<isbn>", "<title>", "<author>", <price>`.
var ErrBookFormat = errors.New("malformed book record")

const bookRecordFields = 4

// BookDecoder reads book records one by one from a text stream. String
// fields are double-quoted with standard quoted-field conventions, so
// embedded commas and doubled quotes are supported. The price field is
// an unquoted floating point literal.
type BookDecoder struct {
	reader *csv.Reader
}

// NewBookDecoder provides a decoder consuming records from r.
func NewBookDecoder(r io.Reader) *BookDecoder {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = bookRecordFields
	cr.TrimLeadingSpace = true
	return &BookDecoder{reader: cr}
}

// Decode reads the next record from the stream into book. On any failure
// the target book is left unmodified so the caller must check the returned
// error before trusting it. A clean end of input is reported as io.EOF.
func (d *BookDecoder) Decode(book *Book) error {
	record, err := d.reader.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBookFormat, err)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return fmt.Errorf("%w: invalid price %q", ErrBookFormat, record[3])
	}

	*book = NewBook(record[0], record[1], record[2], price)
	return nil
}

// EncodeBook writes the textual form of a book record: each string field
// double-quoted, fields joined by a comma and a space, price emitted in
// its natural numeric representation.
func EncodeBook(w io.Writer, book Book) error {
	_, err := fmt.Fprintf(w, "%s, %s, %s, %s",
		quoteField(book.ISBN()),
		quoteField(book.Title()),
		quoteField(book.Author()),
		strconv.FormatFloat(book.Price(), 'g', -1, 64),
	)
	return err
}

// quoteField wraps a field in double quotes, doubling any embedded
// quote so the result parses back with the same convention.
func quoteField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
