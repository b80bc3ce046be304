package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"katalog/pkg/apperr"
	"katalog/pkg/book"
)

type errorResponse struct {
	Detail string `json:"detail" example:"Buku tidak ditemukan"`
}

type healthResponse struct {
	Status string `json:"status" example:"ok"`
}

type field struct {
	name    string
	present bool
}

func required(fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return apperr.Validation(f.name + " is required")
		}
	}
	return nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// statusFor maps an error to its HTTP status. The neither/both stock
// errors are plain client errors, other validation failures are schema
// violations.
func statusFor(err error) int {
	switch {
	case errors.Is(err, book.ErrNoStockChange), errors.Is(err, book.ErrAmbiguousStockChange):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		a.log.Error(ctx, "request failed", "error", err)
		detail = http.StatusText(status)
	}
	a.respond(ctx, w, status, errorResponse{Detail: detail})
}

func (a *API) respond(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error(ctx, "encode response", "error", err)
	}
}
