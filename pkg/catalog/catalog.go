// Package catalog implements the Catalog Store: it owns the books and is
// the only writer of their stock.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"katalog/pkg/book"
	"katalog/pkg/logger"
	"katalog/pkg/otel"
)

const meterName = "katalog/catalog"

// Catalog manages books on top of a book.Repository.
type Catalog struct {
	repo  book.Repository
	log   *logger.Logger
	newID func() string

	booksCreated  metric.Int64Counter
	stockAdjusted metric.Int64Counter
}

// Option customizes a Catalog.
type Option func(*Catalog)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Catalog) { c.newID = fn }
}

// New returns a Catalog backed by repo.
func New(repo book.Repository, log *logger.Logger, opts ...Option) *Catalog {
	c := &Catalog{
		repo:          repo,
		log:           log,
		newID:         uuid.NewString,
		booksCreated:  otel.Counter(meterName, "katalog.books.created", "Books added to the catalog"),
		stockAdjusted: otel.Counter(meterName, "katalog.books.stock_adjusted", "Successful stock adjustments"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create validates and stores a new book under a fresh id.
func (c *Catalog) Create(ctx context.Context, title, author string, stock int) (book.Book, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.create")
	defer span.End()

	b, err := book.New(c.newID(), title, author, stock)
	if err != nil {
		otel.RecordError(span, err)
		return book.Book{}, err
	}
	if err := c.repo.Create(ctx, b); err != nil {
		otel.RecordError(span, err)
		return book.Book{}, err
	}

	span.SetAttributes(attribute.String("book.id", b.ID))
	c.booksCreated.Add(ctx, 1)
	c.log.Info(ctx, "book created", "book_id", b.ID, "stock", b.Stock)
	return b, nil
}

// Get returns the book with the given id.
func (c *Catalog) Get(ctx context.Context, id string) (book.Book, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.get", attribute.String("book.id", id))
	defer span.End()

	b, err := c.repo.Get(ctx, id)
	if err != nil {
		otel.RecordError(span, err)
		return book.Book{}, err
	}
	return b, nil
}

// List returns the books whose title or author contains query, ignoring
// case, in insertion order, together with their count. An empty query
// returns every book.
func (c *Catalog) List(ctx context.Context, query string) ([]book.Book, int, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.list", attribute.String("query", query))
	defer span.End()

	all, err := c.repo.List(ctx)
	if err != nil {
		otel.RecordError(span, err)
		return nil, 0, err
	}

	items := make([]book.Book, 0, len(all))
	for _, b := range all {
		if b.Matches(query) {
			items = append(items, b)
		}
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, len(items), nil
}

// AdjustStock applies change to the book's stock. The check and the write
// happen atomically; a change that would leave stock negative is rejected
// and the stock stays as it was.
func (c *Catalog) AdjustStock(ctx context.Context, id string, change book.StockChange) (book.Book, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.adjust_stock",
		attribute.String("book.id", id),
		attribute.String("stock.change", change.String()),
	)
	defer span.End()

	b, err := c.repo.Update(ctx, id, func(b *book.Book) error {
		return b.Apply(change)
	})
	if err != nil {
		otel.RecordError(span, err)
		c.log.Debug(ctx, "stock adjustment rejected", "book_id", id, "change", change.String(), "error", err)
		return book.Book{}, err
	}

	c.stockAdjusted.Add(ctx, 1)
	c.log.Info(ctx, "stock adjusted", "book_id", id, "change", change.String(), "stock", b.Stock)
	return b, nil
}
