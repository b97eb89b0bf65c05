// internal/adapters/in/http/handler/product_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
	productdom "storefront/internal/domain/product"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	Products *usecase.ProductUsecase
}

func NewProductHandler(products *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{Products: products}
}

type productIn struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (in productIn) toDomain() productdom.Product {
	return productdom.Product{
		Title:       in.Title,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Description: in.Description,
	}
}

// List returns the full catalog.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Add creates a product (authenticated).
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in productIn
	if !decodeBody(w, r, &in) {
		return
	}

	created, err := h.Products.Add(r.Context(), middleware.PrincipalFrom(r), in.toDomain())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Edit updates a product (authenticated).
func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var in productIn
	if !decodeBody(w, r, &in) {
		return
	}

	updated, err := h.Products.Edit(r.Context(), middleware.PrincipalFrom(r), chi.URLParam(r, "productID"), in.toDomain())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
