package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"katalog/pkg/book"
	"katalog/pkg/order"
	"katalog/pkg/otel"
)

const confirmedMessage = "Pesanan berhasil dikonfirmasi"

type createOrderRequest struct {
	BookID       *string `json:"book_id" example:"3f1c2a7e-5b7d-4c1e-9d59-0b7f2f7c6a10"`
	Qty          *int    `json:"qty" example:"3"`
	CustomerName *string `json:"customer_name" example:"Budi"`
}

type confirmOrderResponse struct {
	Message string      `json:"message" example:"Pesanan berhasil dikonfirmasi"`
	Order   order.Order `json:"order"`
	Book    book.Book   `json:"book"`
}

// createOrder places a pending order for a book.
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /orders [post]
func (a *API) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req createOrderRequest
	if err := decode(r, &req); err != nil {
		a.respondError(ctx, w, err)
		return
	}
	if err := required(
		field{"book_id", req.BookID != nil},
		field{"qty", req.Qty != nil},
		field{"customer_name", req.CustomerName != nil},
	); err != nil {
		a.respondError(ctx, w, err)
		return
	}

	o, err := a.ledger.Create(ctx, *req.BookID, *req.Qty, *req.CustomerName)
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, o)
}

// getOrder retrieves an order by ID.
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [get]
func (a *API) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	o, err := a.ledger.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, o)
}

// confirmOrder confirms a pending order and takes its quantity out of stock.
// @Summary Confirm order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} confirmOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /orders/{id}/confirm [post]
func (a *API) confirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "confirmOrderHandler")
	defer span.End()

	o, b, err := a.ledger.Confirm(ctx, mux.Vars(r)["id"])
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, confirmOrderResponse{Message: confirmedMessage, Order: o, Book: b})
}
