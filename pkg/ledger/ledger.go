// Package ledger implements the Order Ledger. It owns the orders and
// confirms them against the catalog's stock.
package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"katalog/pkg/apperr"
	"katalog/pkg/book"
	"katalog/pkg/keylock"
	"katalog/pkg/logger"
	"katalog/pkg/order"
	"katalog/pkg/otel"
)

const meterName = "katalog/ledger"

var (
	// ErrBookGone is returned when a pending order references a book that
	// no longer resolves at confirmation time.
	ErrBookGone = apperr.NotFound("Buku pada pesanan tidak ditemukan")
	// ErrInsufficientStock is returned when the book has fewer units than
	// the order asks for.
	ErrInsufficientStock = apperr.InvalidState("Stok tidak mencukupi untuk konfirmasi")
)

// Catalog is the part of the Catalog Store the ledger depends on.
type Catalog interface {
	Get(ctx context.Context, id string) (book.Book, error)
	AdjustStock(ctx context.Context, id string, change book.StockChange) (book.Book, error)
}

// Ledger manages orders on top of an order.Repository.
type Ledger struct {
	repo    order.Repository
	catalog Catalog
	log     *logger.Logger
	newID   func() string
	locks   keylock.Map

	ordersCreated   metric.Int64Counter
	ordersConfirmed metric.Int64Counter
	confirmRejected metric.Int64Counter
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// New returns a Ledger storing orders in repo and checking books in catalog.
func New(repo order.Repository, catalog Catalog, log *logger.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		repo:            repo,
		catalog:         catalog,
		log:             log,
		newID:           uuid.NewString,
		ordersCreated:   otel.Counter(meterName, "katalog.orders.created", "Orders placed"),
		ordersConfirmed: otel.Counter(meterName, "katalog.orders.confirmed", "Orders confirmed"),
		confirmRejected: otel.Counter(meterName, "katalog.orders.confirm_rejected", "Rejected order confirmations"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Create places a pending order. The book must exist, but its stock is
// neither checked nor reserved.
func (l *Ledger) Create(ctx context.Context, bookID string, qty int, customerName string) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "ledger.create", attribute.String("book.id", bookID))
	defer span.End()

	o, err := order.New(l.newID(), bookID, qty, customerName)
	if err != nil {
		otel.RecordError(span, err)
		return order.Order{}, err
	}
	if _, err := l.catalog.Get(ctx, bookID); err != nil {
		otel.RecordError(span, err)
		return order.Order{}, err
	}
	if err := l.repo.Create(ctx, o); err != nil {
		otel.RecordError(span, err)
		return order.Order{}, err
	}

	span.SetAttributes(attribute.String("order.id", o.ID))
	l.ordersCreated.Add(ctx, 1)
	l.log.Info(ctx, "order created", "order_id", o.ID, "book_id", bookID, "qty", qty)
	return o, nil
}

// Get returns the order with the given id.
func (l *Ledger) Get(ctx context.Context, id string) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "ledger.get", attribute.String("order.id", id))
	defer span.End()

	o, err := l.repo.Get(ctx, id)
	if err != nil {
		otel.RecordError(span, err)
		return order.Order{}, err
	}
	return o, nil
}

// Confirm moves a pending order to confirmed and takes its quantity out of
// the book's stock. It succeeds at most once per order; on any failure
// neither the order nor the stock changes.
func (l *Ledger) Confirm(ctx context.Context, id string) (order.Order, book.Book, error) {
	ctx, span := otel.AddSpan(ctx, "ledger.confirm", attribute.String("order.id", id))
	defer span.End()

	unlock := l.locks.Lock(id)
	defer unlock()

	o, b, err := l.confirm(ctx, id)
	if err != nil {
		otel.RecordError(span, err)
		l.confirmRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason(err))))
		l.log.Info(ctx, "order confirmation rejected", "order_id", id, "error", err)
		return order.Order{}, book.Book{}, err
	}

	l.ordersConfirmed.Add(ctx, 1)
	l.log.Info(ctx, "order confirmed", "order_id", o.ID, "book_id", b.ID, "qty", o.Qty, "stock", b.Stock)
	return o, b, nil
}

// confirm must be called with the order's lock held.
func (l *Ledger) confirm(ctx context.Context, id string) (order.Order, book.Book, error) {
	o, err := l.repo.Get(ctx, id)
	if err != nil {
		return order.Order{}, book.Book{}, err
	}
	if err := o.Confirm(); err != nil {
		return order.Order{}, book.Book{}, err
	}

	// Resolve the book again; the reference from Create is not trusted.
	b, err := l.catalog.Get(ctx, o.BookID)
	if err != nil {
		return order.Order{}, book.Book{}, bookErr(err)
	}
	if b.Stock < o.Qty {
		return order.Order{}, book.Book{}, ErrInsufficientStock
	}

	// The catalog re-checks stock atomically, so a concurrent adjustment
	// between Get and here surfaces as ErrStockBelowZero.
	b, err = l.catalog.AdjustStock(ctx, o.BookID, book.AddDelta(-o.Qty))
	if err != nil {
		return order.Order{}, book.Book{}, bookErr(err)
	}

	if err := l.repo.Update(ctx, o); err != nil {
		if _, rerr := l.catalog.AdjustStock(ctx, o.BookID, book.AddDelta(o.Qty)); rerr != nil {
			l.log.Error(ctx, "restoring stock after failed confirmation", "order_id", id, "book_id", o.BookID, "qty", o.Qty, "error", rerr)
		}
		return order.Order{}, book.Book{}, err
	}

	return o, b, nil
}

func bookErr(err error) error {
	switch {
	case errors.Is(err, book.ErrStockBelowZero):
		return ErrInsufficientStock
	case errors.Is(err, apperr.ErrNotFound):
		return ErrBookGone
	default:
		return err
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, order.ErrNotPending):
		return "not_pending"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}
