// Package book holds the Book record, the stock-change variant and the
// repository contract of the catalog.
package book

import (
	"context"
	"errors"
	"strings"

	"katalog/pkg/apperr"
)

// Book is a catalog entry. Stock is the only field that changes after
// creation and it never drops below zero.
type Book struct {
	ID     string `json:"id" example:"3f1c2a7e-5b7d-4c1e-9d59-0b7f2f7c6a10"`
	Title  string `json:"title" example:"Dune"`
	Author string `json:"author" example:"Frank Herbert"`
	Stock  int    `json:"stock" example:"10"`
}

// Repository defines behavior for storing books.
type Repository interface {
	Create(ctx context.Context, b Book) error
	Get(ctx context.Context, id string) (Book, error)
	// List returns books in insertion order.
	List(ctx context.Context) ([]Book, error)
	// Update applies fn to the stored book atomically. The book is only
	// written back when fn returns nil.
	Update(ctx context.Context, id string, fn func(*Book) error) (Book, error)
}

var (
	// ErrNotFound indicates the requested book does not exist.
	ErrNotFound = apperr.NotFound("Buku tidak ditemukan")
	// ErrDuplicateID is returned by repositories when an id is reused.
	ErrDuplicateID = errors.New("book id already exists")

	ErrEmptyTitle    = apperr.Validation("title must not be empty")
	ErrEmptyAuthor   = apperr.Validation("author must not be empty")
	ErrNegativeStock = apperr.Validation("stock must be greater than or equal to 0")

	ErrNoStockChange        = apperr.Validation("Isi set_stock atau delta")
	ErrAmbiguousStockChange = apperr.Validation("Pilih salah satu: set_stock atau delta")
	// ErrStockBelowZero rejects a delta that would leave stock negative.
	ErrStockBelowZero = apperr.InvalidState("Stok tidak boleh negatif")
)

// New validates the fields and returns a Book with the given id.
func New(id, title, author string, stock int) (Book, error) {
	switch {
	case title == "":
		return Book{}, ErrEmptyTitle
	case author == "":
		return Book{}, ErrEmptyAuthor
	case stock < 0:
		return Book{}, ErrNegativeStock
	}
	return Book{ID: id, Title: title, Author: author, Stock: stock}, nil
}

// Matches reports whether query is a case-insensitive substring of the
// title or the author. An empty query matches every book.
func (b Book) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// Apply changes the stock according to c. On error the book is left as is.
func (b *Book) Apply(c StockChange) error {
	switch c.mode {
	case modeSet:
		if c.value < 0 {
			return ErrNegativeStock
		}
		b.Stock = c.value
	case modeAdd:
		next := b.Stock + c.value
		if next < 0 {
			return ErrStockBelowZero
		}
		b.Stock = next
	default:
		return ErrNoStockChange
	}
	return nil
}
