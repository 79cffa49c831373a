package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrIndexOutOfRange reports a positional access beyond the logical size.
	ErrIndexOutOfRange = errors.New("book index out of range")

	// ErrCapacityReached reports that records were left behind because the
	// list ran out of room. The records held by the list remain valid.
	ErrCapacityReached = errors.New("book list capacity reached")
)

// BookList is a fixed-capacity ordered collection of book records. The
// capacity is set once at construction and the list never grows past it:
// any operation which would exceed the bound is cut short there and says
// so through ErrCapacityReached. Slots past the logical size are allocated
// but hold no valid record.
type BookList struct {
	books   []Book // backing storage, allocated once, len is the capacity
	size    int    // logical number of valid records, always <= capacity
	epsilon float64
}

// NewBookList provides an empty list able to hold up to capacity records.
func NewBookList(capacity int) *BookList {
	if capacity < 0 {
		capacity = 0
	}
	return &BookList{
		books:   make([]Book, capacity),
		epsilon: DefaultPriceEpsilon,
	}
}

// NewBookListWithEpsilon is like NewBookList with a custom price
// comparison tolerance used by Find.
func NewBookListWithEpsilon(capacity int, epsilon float64) *BookList {
	list := NewBookList(capacity)
	if epsilon > 0 {
		list.epsilon = epsilon
	}
	return list
}

// Size returns the number of valid records held by the list.
func (bl *BookList) Size() int {
	return bl.size
}

// Capacity returns the maximum number of records the list can hold.
func (bl *BookList) Capacity() int {
	return len(bl.books)
}

// Remaining returns the number of free slots left.
func (bl *BookList) Remaining() int {
	return len(bl.books) - bl.size
}

// At returns a copy of the record at the given zero-based position.
// Positions outside [0, Size()) yield ErrIndexOutOfRange.
func (bl *BookList) At(index int) (Book, error) {
	if index < 0 || index >= bl.size {
		return Book{}, fmt.Errorf("%w: %d with size %d", ErrIndexOutOfRange, index, bl.size)
	}
	return bl.at(index), nil
}

// at is the unchecked positional access, for internal use on indexes
// already known to be valid.
func (bl *BookList) at(index int) Book {
	return bl.books[index]
}

// Add appends one record at the end of the list. It fails with
// ErrCapacityReached when the list is full.
func (bl *BookList) Add(book Book) error {
	if bl.size == len(bl.books) {
		return ErrCapacityReached
	}
	bl.books[bl.size] = book
	bl.size++
	return nil
}

// Find scans the valid records in order and returns the zero-based
// position of the first one equal to book, using the same comparison as
// Book.Equal with the list tolerance. When no record matches, it returns
// the logical size as the not-found sentinel, one past the last index.
func (bl *BookList) Find(book Book) int {
	for i := 0; i < bl.size; i++ {
		if bl.books[i].EqualWithEpsilon(book, bl.epsilon) {
			return i
		}
	}
	return bl.size
}

// Append concatenates the records of other at the end of the list, in
// order, copying them so other stays untouched and usable. It stops as
// soon as either list bound is hit and reports ErrCapacityReached when
// records of other could not fit. The receiver is returned to allow
// chaining.
func (bl *BookList) Append(other *BookList) (*BookList, error) {
	i := 0
	for bl.size < len(bl.books) && i < other.size {
		bl.books[bl.size] = other.at(i)
		bl.size++
		i++
	}
	if i < other.size {
		return bl, ErrCapacityReached
	}
	return bl, nil
}

// Load replaces the list content with records parsed from r, starting at
// slot 0 and stopping at end of input, at the first malformed record or
// at capacity. It returns the number of records now held. A malformed
// record yields an error wrapping ErrBookFormat; input left over once
// the list is full yields ErrCapacityReached.
func (bl *BookList) Load(r io.Reader) (int, error) {
	bl.size = 0
	decoder := NewBookDecoder(r)
	var book Book
	for bl.size < len(bl.books) {
		err := decoder.Decode(&book)
		if err == io.EOF {
			return bl.size, nil
		}
		if err != nil {
			return bl.size, err
		}
		bl.books[bl.size] = book
		bl.size++
	}

	// The list is full. Probe for one more record to tell the caller
	// whether the stream still had data to offer.
	if err := decoder.Decode(&book); err == io.EOF {
		return bl.size, nil
	}
	return bl.size, ErrCapacityReached
}

// LoadFile replaces the list content with the records of the named text
// file, with the same bounds as Load. A file which cannot be opened
// leaves the list empty and usable; the wrapped open error is returned
// for callers who want to tell that case apart.
func (bl *BookList) LoadFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		bl.size = 0
		return 0, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()
	return bl.Load(file)
}

// Encode writes the list in its display form: one line per record with a
// right-justified five-wide zero-based position before it.
func (bl *BookList) Encode(w io.Writer) error {
	for i := 0; i < bl.size; i++ {
		if _, err := fmt.Fprintf(w, "\n%5d:  ", i); err != nil {
			return err
		}
		if err := EncodeBook(w, bl.books[i]); err != nil {
			return err
		}
	}
	return nil
}

// String returns the display form of the whole list.
func (bl *BookList) String() string {
	var sb strings.Builder
	_ = bl.Encode(&sb)
	return sb.String()
}
