package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopmint/shopmint/internal/domain"
	"github.com/shopmint/shopmint/internal/pkg/httputil"
)

// Handler handles HTTP requests for the catalog module.
type Handler struct {
	service *Service
}

// NewHandler creates a new catalog handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers read-only product routes.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/products", h.CreateProduct)
	r.Put("/products/{id}", h.UpdateProduct)
	r.Delete("/products/{id}", h.DeleteProduct)
}

type listResponse struct {
	Success bool              `json:"success"`
	Data    []*domain.Product `json:"data"`
	Count   int               `json:"count"`
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	if len(products) == 0 {
		httputil.Error(w, http.StatusNotFound, "No product found")
		return
	}

	httputil.JSON(w, http.StatusOK, listResponse{
		Success: true,
		Data:    products,
		Count:   len(products),
	})
}

type productResponse struct {
	Success bool            `json:"success"`
	Data    *domain.Product `json:"data"`
	Message string          `json:"message,omitempty"`
}

// GetProduct handles GET /products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, productResponse{
		Success: true,
		Data:    product,
	})
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, decodeErrorMessage(err))
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, productResponse{
		Success: true,
		Data:    product,
		Message: "Product created successfully",
	})
}

// UpdateProduct handles PUT /products/{id}. Absent fields keep their
// stored values; the merged record must still be a valid product.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, decodeErrorMessage(err))
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, productResponse{
		Success: true,
		Data:    product,
		Message: "Product updated successfully",
	})
}

// DeleteProduct handles DELETE /products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, productResponse{
		Success: true,
		Data:    product,
		Message: "Product deleted successfully",
	})
}

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrProductNotFound, Status: http.StatusNotFound},
}

func (h *Handler) handleServiceError(r *http.Request, w http.ResponseWriter, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		httputil.Error(w, http.StatusBadRequest, vErr.Message)
		return
	}
	httputil.HandleError(r.Context(), w, err, errorMappings)
}

// decodeErrorMessage maps JSON type mismatches on known fields to the
// validator's wording, so "price": "abc" and "images": [1] fail the same
// way a missing field would.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case typeErr.Field == "price":
			return productMessages["Price.required"]
		case typeErr.Field == "quantity":
			return productMessages["Quantity.required"]
		case strings.HasPrefix(typeErr.Field, "images"):
			return "All image URLs must be strings"
		}
	}
	return "Invalid request body"
}
