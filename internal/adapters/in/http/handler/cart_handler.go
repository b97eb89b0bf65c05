// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
)

// CartHandler serves the session cart.
type CartHandler struct {
	Carts *usecase.CartRegistry
}

func NewCartHandler(carts *usecase.CartRegistry) *CartHandler {
	return &CartHandler{Carts: carts}
}

type cartItemView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

type cartView struct {
	Items     []cartItemView `json:"items"`
	Total     string         `json:"total"`
	ItemCount int            `json:"itemCount"`
	Size      int            `json:"size"`
}

func cartViewOf(eng *usecase.CartUsecase) cartView {
	items := eng.Items()
	views := make([]cartItemView, 0, len(items))
	for _, it := range items {
		views = append(views, cartItemView{
			ID:       it.ProductID,
			Title:    it.Title,
			Price:    it.UnitPrice.String(),
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}
	return cartView{
		Items:     views,
		Total:     eng.DisplayTotal(),
		ItemCount: eng.ItemCount(),
		Size:      eng.Size(),
	}
}

func (h *CartHandler) engine(r *http.Request) *usecase.CartUsecase {
	return h.Carts.ForSession(middleware.SessionIDFrom(r))
}

// Get returns the current cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartViewOf(h.engine(r)))
}

// AddItem adds a product (or increments its quantity by 1).
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Price string `json:"price"`
		Image string `json:"image"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	eng := h.engine(r)
	if err := eng.AddItem(usecase.AddItemInput{
		ProductID: in.ID,
		Title:     in.Title,
		Price:     in.Price,
		Image:     in.Image,
	}); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartViewOf(eng))
}

// SetQuantity replaces the quantity for one line item.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Quantity int `json:"quantity"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	eng := h.engine(r)
	if err := eng.SetQuantity(chi.URLParam(r, "productID"), in.Quantity); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartViewOf(eng))
}

// RemoveItem deletes one line item (absent is fine).
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	eng := h.engine(r)
	eng.RemoveItem(chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, cartViewOf(eng))
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	eng := h.engine(r)
	eng.Clear()
	writeJSON(w, http.StatusOK, cartViewOf(eng))
}
