// internal/adapters/in/http/handler/order_handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
	"storefront/internal/domain/apperr"
	orderdom "storefront/internal/domain/order"
)

// OrderHandler serves order history and lifecycle mutations, plus the
// checkout handoff.
type OrderHandler struct {
	Orders   *usecase.OrderUsecase
	Checkout *usecase.CheckoutUsecase
	Carts    *usecase.CartRegistry
}

func NewOrderHandler(orders *usecase.OrderUsecase, checkout *usecase.CheckoutUsecase, carts *usecase.CartRegistry) *OrderHandler {
	return &OrderHandler{Orders: orders, Checkout: checkout, Carts: carts}
}

type orderItemView struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

type orderView struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Items        []orderItemView `json:"items"`
	Total        string          `json:"total"`
	Status       string          `json:"status"`
	ReturnReason string          `json:"returnReason,omitempty"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

func orderViewOf(o orderdom.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemView{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price.String(),
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return orderView{
		ID:           o.ID,
		UserID:       o.UserID,
		Items:        items,
		Total:        o.Total.StringFixed(2),
		Status:       string(o.Status),
		ReturnReason: o.ReturnReason,
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func orderViewsOf(orders []orderdom.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderViewOf(o))
	}
	return out
}

// List refreshes the cache from the remote service (full replace,
// createdAt desc, capped page) and returns it.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFrom(r)
	if p == nil {
		writeFailure(w, apperr.Unauthenticated("please sign in to view orders"))
		return
	}

	orders, err := h.Orders.Fetch(r.Context(), p.UID)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderViewsOf(orders))
}

// PlaceOrder runs the checkout handoff for the session cart.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	cart := h.Carts.ForSession(middleware.SessionIDFrom(r))

	o, err := h.Checkout.Checkout(r.Context(), cart)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderViewOf(o))
}

// Cancel moves a pending order to cancelled.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.Cancel(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderViewOf(o))
}

// Return moves a completed order to returned.
func (h *OrderHandler) Return(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Reason string `json:"reason"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	o, err := h.Orders.Return(r.Context(), chi.URLParam(r, "orderID"), in.Reason)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderViewOf(o))
}

// Delete removes a pending order.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Delete(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
