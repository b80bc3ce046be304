package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"katalog/pkg/book"
	"katalog/pkg/otel"
)

type createBookRequest struct {
	Title  *string `json:"title" example:"Dune"`
	Author *string `json:"author" example:"Frank Herbert"`
	Stock  *int    `json:"stock" example:"10"`
}

// updateStockRequest carries exactly one of SetStock or Delta.
type updateStockRequest struct {
	SetStock *int `json:"set_stock,omitempty" example:"12"`
	Delta    *int `json:"delta,omitempty" example:"-2"`
}

type listBooksResponse struct {
	Items []book.Book `json:"items"`
	Count int         `json:"count"`
}

// createBook adds a book to the catalog.
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body createBookRequest true "Book"
// @Success 200 {object} book.Book
// @Failure 422 {object} errorResponse
// @Router /books [post]
func (a *API) createBook(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createBookHandler")
	defer span.End()

	var req createBookRequest
	if err := decode(r, &req); err != nil {
		a.respondError(ctx, w, err)
		return
	}
	if err := required(
		field{"title", req.Title != nil},
		field{"author", req.Author != nil},
		field{"stock", req.Stock != nil},
	); err != nil {
		a.respondError(ctx, w, err)
		return
	}

	b, err := a.catalog.Create(ctx, *req.Title, *req.Author, *req.Stock)
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, b)
}

// listBooks lists books, optionally filtered by title or author.
// @Summary List books
// @Tags books
// @Produce json
// @Param q query string false "Case-insensitive title or author substring"
// @Success 200 {object} listBooksResponse
// @Router /books [get]
func (a *API) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listBooksHandler")
	defer span.End()

	items, count, err := a.catalog.List(ctx, r.URL.Query().Get("q"))
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, listBooksResponse{Items: items, Count: count})
}

// getBook retrieves a book by ID.
// @Summary Get book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} book.Book
// @Failure 404 {object} errorResponse
// @Router /books/{id} [get]
func (a *API) getBook(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getBookHandler")
	defer span.End()

	b, err := a.catalog.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, b)
}

// updateStock sets or shifts a book's stock.
// @Summary Update stock
// @Description Send exactly one of set_stock (absolute, >= 0) or delta (signed).
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param change body updateStockRequest true "Stock change"
// @Success 200 {object} book.Book
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /books/{id}/stock [patch]
func (a *API) updateStock(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateStockHandler")
	defer span.End()

	id := mux.Vars(r)["id"]

	var req updateStockRequest
	if err := decode(r, &req); err != nil {
		a.respondError(ctx, w, err)
		return
	}

	change, err := book.ParseStockChange(req.SetStock, req.Delta)
	if err != nil {
		// A missing book outranks a neither/both body.
		if !errors.Is(err, book.ErrNegativeStock) {
			if _, gerr := a.catalog.Get(ctx, id); gerr != nil {
				a.respondError(ctx, w, gerr)
				return
			}
		}
		a.respondError(ctx, w, err)
		return
	}

	b, err := a.catalog.AdjustStock(ctx, id, change)
	if err != nil {
		a.respondError(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, b)
}
