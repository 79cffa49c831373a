package main

import (
	"math"
	"strings"
)

// DefaultPriceEpsilon is the tolerance applied when comparing book prices.
// Prices are currency values which may drift slightly after repeated
// text round-trips, so two prices are considered the same when they are
// within this distance of each other.
const DefaultPriceEpsilon = 1.0e-4

// Book represents a single book record of the catalog.
type Book struct {
	isbn   string
	title  string
	author string
	price  float64
}

// NewBook provides a book record with all its fields set.
func NewBook(isbn, title, author string, price float64) Book {
	return Book{
		isbn:   isbn,
		title:  title,
		author: author,
		price:  price,
	}
}

// ISBN returns the book ISBN.
func (b Book) ISBN() string {
	return b.isbn
}

// Title returns the book title.
func (b Book) Title() string {
	return b.title
}

// Author returns the book author.
func (b Book) Author() string {
	return b.author
}

// Price returns the book price.
func (b Book) Price() float64 {
	return b.price
}

// SetISBN replaces the book ISBN.
func (b *Book) SetISBN(isbn string) {
	b.isbn = isbn
}

// SetTitle replaces the book title.
func (b *Book) SetTitle(title string) {
	b.title = title
}

// SetAuthor replaces the book author.
func (b *Book) SetAuthor(author string) {
	b.author = author
}

// SetPrice replaces the book price.
func (b *Book) SetPrice(price float64) {
	b.price = price
}

// Equal reports whether two book records hold the same data. String fields
// must match exactly while prices only need to be within DefaultPriceEpsilon
// of each other.
func (b Book) Equal(other Book) bool {
	return b.EqualWithEpsilon(other, DefaultPriceEpsilon)
}

// EqualWithEpsilon is like Equal but with a caller-provided price tolerance.
func (b Book) EqualWithEpsilon(other Book, epsilon float64) bool {
	return b.isbn == other.isbn &&
		b.title == other.title &&
		b.author == other.author &&
		math.Abs(b.price-other.price) < epsilon
}

// String returns the textual form of the book record.
func (b Book) String() string {
	var sb strings.Builder
	_ = EncodeBook(&sb, b)
	return sb.String()
}
