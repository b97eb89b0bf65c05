// internal/domain/order/repository_port.go
package order

import (
	"context"
	"time"
)

// Repository is the persistence port for Order against the remote
// document service.
//
// Storage recommendation (document store):
// - collection: orders
// - fields: userId, items, total, status, returnReason?, createdAt, updatedAt
// - createdAt/updatedAt stored as ISO-8601 strings (wire contract)
//
// Error policy:
// - "document does not exist" maps to ErrNotFound
// - every other failure is normalized by the adapter into the structured
//   remote-failure variant (apperr) with a user-facing message
type Repository interface {
	// Create stores a new order and returns it with the assigned ID.
	Create(ctx context.Context, o Order) (Order, error)

	// UpdateStatus patches status (+ returnReason when non-empty) and
	// updatedAt on the remote record.
	UpdateStatus(ctx context.Context, id string, st Status, returnReason string, updatedAt time.Time) error

	// Delete physically removes the remote record.
	Delete(ctx context.Context, id string) error

	// ListByUser returns the user's orders, createdAt descending, capped
	// at limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]Order, error)
}
