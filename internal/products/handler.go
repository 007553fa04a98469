package products

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/secureapp/secureapp/internal/httpx"
)

// CreateRequest is the POST /products body. Description, price, and
// quantity are optional, matching the API contract.
type CreateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Handler exposes the token-gated catalog endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Routes returns the catalog routes. Token verification is applied by
// the caller when mounting.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
	return r
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "list products failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if items == nil {
		items = []Product{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.service.Create(r.Context(), Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	switch {
	case errors.Is(err, ErrInvalidProduct):
		httpx.Message(w, http.StatusBadRequest, "invalid product")
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "create product failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.Message(w, http.StatusOK, "Product added successfully")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusNotFound, "Product not found")
		return
	}

	var input UpdateInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.service.Update(r.Context(), id, input)
	switch {
	case errors.Is(err, ErrProductNotFound):
		httpx.Message(w, http.StatusNotFound, "Product not found")
		return
	case errors.Is(err, ErrInvalidProduct):
		httpx.Message(w, http.StatusBadRequest, "invalid product")
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "update product failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.Message(w, http.StatusOK, "Product updated successfully")
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusNotFound, "Product not found")
		return
	}

	err = h.service.Delete(r.Context(), id)
	switch {
	case errors.Is(err, ErrProductNotFound):
		httpx.Message(w, http.StatusNotFound, "Product not found")
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "delete product failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.Message(w, http.StatusOK, "Product deleted successfully")
}
