// internal/domain/cart/store_port.go
package cart

// Store is the persistence port for the cart mirror.
//
// Storage recommendation (local JSON record):
// - payload: ordered sequence of {id, title, price, quantity, image}
// - one record per session; single writer (the cart engine)
//
// Contract:
// - Load fails soft: missing record or any decode error yields an empty
//   slice, never an error (cart usability must not depend on the mirror).
// - Save replaces the entire mirror atomically from the caller's view.
//   A failure is logged by the implementation, never returned: persistence
//   is best-effort.
type Store interface {
	Load() []LineItem
	Save(items []LineItem)
}
