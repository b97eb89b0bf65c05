// internal/domain/cart/entity.go
package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/apperr"
)

// LineItem represents one line item in a cart.
// Uniqueness key is ProductID; UnitPrice is fixed at the moment the item
// enters the cart (parsed from string input, never float math).
type LineItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// ParsePrice normalizes a price given as string input into a decimal
// at the point of cart entry.
func ParsePrice(s string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperr.Validation("invalid price: " + strings.TrimSpace(s))
	}
	if p.IsNegative() {
		return decimal.Zero, apperr.Validation("price must not be negative")
	}
	return p, nil
}

// Cart is the client-local, mutable collection of line items prior to
// checkout. Insertion order is kept (it is the mirror's wire order), but
// order carries no meaning.
type Cart struct {
	Items []LineItem
}

// New builds a cart from rehydrated items.
// Invalid entries are dropped and duplicate product IDs merged, so a stale
// or hand-edited mirror can never produce an invalid cart.
func New(items []LineItem) *Cart {
	return &Cart{Items: normalizeAndMerge(items)}
}

// Add inserts the product with quantity 1, or increments the existing
// entry by 1. Never fails for a valid item.
func (c *Cart) Add(it LineItem) error {
	pid := strings.TrimSpace(it.ProductID)
	if pid == "" {
		return apperr.Validation("product id is required")
	}

	if idx := c.indexOf(pid); idx >= 0 {
		c.Items[idx].Quantity++
		return nil
	}

	it.ProductID = pid
	it.Title = strings.TrimSpace(it.Title)
	it.Quantity = 1
	c.Items = append(c.Items, it)
	return nil
}

// Remove deletes the entry if present; absent is a no-op, not an error.
func (c *Cart) Remove(productID string) {
	idx := c.indexOf(strings.TrimSpace(productID))
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// SetQuantity replaces the quantity exactly. quantity < 1 is rejected and
// the existing quantity preserved: decrementing below 1 must go through
// Remove, not SetQuantity. Absent product is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return apperr.Validation("quantity must be at least 1; remove the item instead")
	}
	if idx := c.indexOf(strings.TrimSpace(productID)); idx >= 0 {
		c.Items[idx].Quantity = quantity
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// Total is Σ(unitPrice × quantity), exact.
// Rounding to 2 places happens at display/commit, not here, so repeated
// operations never compound rounding error.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is the summed quantity, used for the badge/display count.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Size is the distinct product count.
func (c *Cart) Size() int {
	return len(c.Items)
}

// Snapshot returns a copy decoupled from future mutation.
func (c *Cart) Snapshot() []LineItem {
	out := make([]LineItem, len(c.Items))
	copy(out, c.Items)
	return out
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ----------------------------
// Helpers
// ----------------------------

func normalizeAndMerge(src []LineItem) []LineItem {
	out := make([]LineItem, 0, len(src))
	seen := map[string]int{}

	for _, it := range src {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || it.Quantity < 1 || it.UnitPrice.IsNegative() {
			continue
		}

		if idx, ok := seen[pid]; ok {
			out[idx].Quantity += it.Quantity
			continue
		}

		it.ProductID = pid
		it.Title = strings.TrimSpace(it.Title)
		seen[pid] = len(out)
		out = append(out, it)
	}
	return out
}
