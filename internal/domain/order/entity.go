// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/apperr"
)

// ========================================
// Status
// ========================================

// Status is the order lifecycle state. Transitions are one-directional
// and mostly terminal:
//
//	(none)    --checkout-->       pending
//	pending   --cancel-->         cancelled   (terminal)
//	pending   --fulfill-->        completed
//	completed --return(reason)--> returned    (terminal)
//	pending   --delete-->         (record removed)
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusReturned  Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// ========================================
// Entity
// ========================================

// ItemSnapshot is stored inside Order.Items. It is taken from the cart at
// creation time; later cart mutations never affect it.
type ItemSnapshot struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// Order is the server-confirmed record. The remote service owns it; this
// entity is the cached local view plus the client-side transition guards.
type Order struct {
	ID           string
	UserID       string
	Items        []ItemSnapshot
	Total        decimal.Decimal
	Status       Status
	ReturnReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Standard repository errors
var (
	ErrNotFound = errors.New("order: not found")
)

// New validates and builds a pending order. All validation happens here,
// before any remote call.
func New(userID string, items []ItemSnapshot, total decimal.Decimal, now time.Time) (Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return Order{}, apperr.Validation("user id is required")
	}
	if len(items) == 0 {
		return Order{}, apperr.Validation("order requires at least one item")
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 || it.Price.IsNegative() {
			return Order{}, apperr.Validation("order contains an invalid item snapshot")
		}
	}
	if !total.IsPositive() {
		return Order{}, apperr.Validation("order total must be greater than zero")
	}

	return Order{
		UserID:    uid,
		Items:     cloneItems(items),
		Total:     total,
		Status:    StatusPending,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// ========================================
// Transitions (client-side advisory guards)
// ========================================

// Cancel moves pending -> cancelled.
func (o *Order) Cancel(now time.Time) error {
	if o.Status != StatusPending {
		return apperr.Preconditionf("cancel requires a pending order (status is %s)", o.Status)
	}
	o.Status = StatusCancelled
	o.UpdatedAt = now.UTC()
	return nil
}

// Fulfill moves pending -> completed.
func (o *Order) Fulfill(now time.Time) error {
	if o.Status != StatusPending {
		return apperr.Preconditionf("fulfill requires a pending order (status is %s)", o.Status)
	}
	o.Status = StatusCompleted
	o.UpdatedAt = now.UTC()
	return nil
}

// Return moves completed -> returned with a required reason.
func (o *Order) Return(reason string, now time.Time) error {
	r := strings.TrimSpace(reason)
	if r == "" {
		return apperr.Validation("return reason is required")
	}
	if o.Status != StatusCompleted {
		return apperr.Preconditionf("return requires a completed order (status is %s)", o.Status)
	}
	o.Status = StatusReturned
	o.ReturnReason = r
	o.UpdatedAt = now.UTC()
	return nil
}

// Deletable reports whether the record may be physically deleted.
// Only pending orders are deletable.
func (o Order) Deletable() error {
	if o.Status != StatusPending {
		return apperr.Preconditionf("delete requires a pending order (status is %s)", o.Status)
	}
	return nil
}

// ----------------------------
// Helpers
// ----------------------------

func cloneItems(src []ItemSnapshot) []ItemSnapshot {
	out := make([]ItemSnapshot, len(src))
	copy(out, src)
	return out
}
