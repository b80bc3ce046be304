// Package httpapi exposes the catalog and the order ledger over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"katalog/pkg/book"
	"katalog/pkg/logger"
	"katalog/pkg/order"
)

// Catalog is the Catalog Store as seen by the handlers.
type Catalog interface {
	Create(ctx context.Context, title, author string, stock int) (book.Book, error)
	Get(ctx context.Context, id string) (book.Book, error)
	List(ctx context.Context, query string) ([]book.Book, int, error)
	AdjustStock(ctx context.Context, id string, change book.StockChange) (book.Book, error)
}

// Ledger is the Order Ledger as seen by the handlers.
type Ledger interface {
	Create(ctx context.Context, bookID string, qty int, customerName string) (order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Confirm(ctx context.Context, id string) (order.Order, book.Book, error)
}

// Config holds the dependencies of the HTTP layer.
type Config struct {
	Catalog        Catalog
	Ledger         Ledger
	Log            *logger.Logger
	Tracer         trace.Tracer
	AllowedOrigins []string
}

// API serves the HTTP endpoints.
type API struct {
	catalog Catalog
	ledger  Ledger
	log     *logger.Logger
	tracer  trace.Tracer
	origins []string
}

// New returns an API for cfg.
func New(cfg Config) *API {
	return &API{
		catalog: cfg.Catalog,
		ledger:  cfg.Ledger,
		log:     cfg.Log,
		tracer:  cfg.Tracer,
		origins: cfg.AllowedOrigins,
	}
}

// Handler builds the router with tracing, request logging and CORS.
func (a *API) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(a.traceMiddleware, a.logMiddleware)

	r.HandleFunc("/healthz", a.health).Methods(http.MethodGet)

	books := r.PathPrefix("/books").Subrouter()
	books.HandleFunc("", a.createBook).Methods(http.MethodPost)
	books.HandleFunc("", a.listBooks).Methods(http.MethodGet)
	books.HandleFunc("/{id}", a.getBook).Methods(http.MethodGet)
	books.HandleFunc("/{id}/stock", a.updateStock).Methods(http.MethodPatch)

	orders := r.PathPrefix("/orders").Subrouter()
	orders.HandleFunc("", a.createOrder).Methods(http.MethodPost)
	orders.HandleFunc("/{id}", a.getOrder).Methods(http.MethodGet)
	orders.HandleFunc("/{id}/confirm", a.confirmOrder).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	origins := a.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Traceparent", "Tracestate"},
	})
	return c.Handler(r)
}

// health reports liveness.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Router /healthz [get]
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	a.respond(r.Context(), w, http.StatusOK, healthResponse{Status: "ok"})
}
