package order

import (
	"context"
	"errors"

	"katalog/pkg/apperr"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Order represents a customer order for a single book.
type Order struct {
	ID           string `json:"id" example:"9b2d4c3e-1f7a-4a55-8c0e-6d2f3b1a9e77"`
	BookID       string `json:"book_id" example:"3f1c2a7e-5b7d-4c1e-9d59-0b7f2f7c6a10"`
	Qty          int    `json:"qty" example:"3"`
	CustomerName string `json:"customer_name" example:"Budi"`
	Status       Status `json:"status" example:"pending"`
}

// Repository defines behavior for persisting orders.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	Update(ctx context.Context, o Order) error
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = apperr.NotFound("Pesanan tidak ditemukan")
	// ErrDuplicateID is returned by repositories when an id is reused.
	ErrDuplicateID = errors.New("order id already exists")

	ErrInvalidQty    = apperr.Validation("qty must be greater than 0")
	ErrEmptyCustomer = apperr.Validation("customer_name must not be empty")
	ErrNotPending    = apperr.InvalidState("Pesanan sudah diproses / bukan pending")
)

// New validates the fields and returns a pending order.
func New(id, bookID string, qty int, customerName string) (Order, error) {
	if qty <= 0 {
		return Order{}, ErrInvalidQty
	}
	if customerName == "" {
		return Order{}, ErrEmptyCustomer
	}
	return Order{
		ID:           id,
		BookID:       bookID,
		Qty:          qty,
		CustomerName: customerName,
		Status:       StatusPending,
	}, nil
}

// Confirm moves a pending order to confirmed. Confirmed is terminal.
func (o *Order) Confirm() error {
	if o.Status != StatusPending {
		return ErrNotPending
	}
	o.Status = StatusConfirmed
	return nil
}
