// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"storefront/internal/domain/apperr"
)

// AddedBy records the principal that created or last edited the product.
type AddedBy struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Product is a catalog document. Price stays a string here: it is only
// normalized to a decimal at the moment it enters a cart.
type Product struct {
	ID          string
	Title       string
	Price       string
	Category    string
	Image       string
	Description string
	Quantity    int
	AddedBy     AddedBy
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize trims text fields in place.
func (p *Product) Normalize() {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Price = strings.TrimSpace(p.Price)
	p.Category = strings.TrimSpace(p.Category)
	p.Image = strings.TrimSpace(p.Image)
	p.Description = strings.TrimSpace(p.Description)
}

// Validate checks required fields for create/edit.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return apperr.Validation("product title is required")
	}
	if strings.TrimSpace(p.Price) == "" {
		return apperr.Validation("product price is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return apperr.Validation("product category is required")
	}
	return nil
}
