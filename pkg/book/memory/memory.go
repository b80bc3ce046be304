// Package memory implements an in-memory book repository.
package memory

import (
	"context"
	"sync"

	"katalog/pkg/book"
)

// Repository provides an in-memory implementation of book.Repository.
// Books are listed in the order they were created.
type Repository struct {
	mu    sync.RWMutex
	books map[string]book.Book
	ids   []string
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{books: make(map[string]book.Book)}
}

// Create stores the book.
func (r *Repository) Create(ctx context.Context, b book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ID]; ok {
		return book.ErrDuplicateID
	}
	r.books[b.ID] = b
	r.ids = append(r.ids, b.ID)
	return nil
}

// Get retrieves a book by ID.
func (r *Repository) Get(ctx context.Context, id string) (book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	if !ok {
		return book.Book{}, book.ErrNotFound
	}
	return b, nil
}

// List returns all books in insertion order.
func (r *Repository) List(ctx context.Context) ([]book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]book.Book, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.books[id])
	}
	return out, nil
}

// Update runs fn on a copy of the book while holding the write lock and
// stores the copy only if fn succeeds.
func (r *Repository) Update(ctx context.Context, id string, fn func(*book.Book) error) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.Book{}, book.ErrNotFound
	}
	if err := fn(&b); err != nil {
		return book.Book{}, err
	}
	b.ID = id
	r.books[id] = b
	return b, nil
}
