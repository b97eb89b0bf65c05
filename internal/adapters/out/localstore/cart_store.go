// internal/adapters/out/localstore/cart_store.go
package localstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	cartdom "storefront/internal/domain/cart"
)

// CartStore persists the cart mirror as a single JSON file whose payload
// is an ordered sequence of {id, title, price, quantity, image} records.
//
// Load fails soft to an empty cart on any read/decode problem; Save is
// best-effort and replaces the whole file atomically (temp + rename).
// Failures are logged, never returned: this mirror must not affect cart
// usability.
type CartStore struct {
	path string
}

func NewCartStore(path string) *CartStore {
	return &CartStore{path: path}
}

// lineItemRec is the mirror wire shape. Price is a json.Number carrying
// the decimal's exact text, so a save/load round-trip has no float drift.
type lineItemRec struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Price    json.Number `json:"price"`
	Quantity int         `json:"quantity"`
	Image    string      `json:"image"`
}

func (s *CartStore) Load() []cartdom.LineItem {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[cart_store] WARN: read %s failed: %v (starting with empty cart)", s.path, err)
		}
		return []cartdom.LineItem{}
	}

	var recs []lineItemRec
	if err := json.Unmarshal(raw, &recs); err != nil {
		log.Printf("[cart_store] WARN: corrupted cart mirror %s: %v (starting with empty cart)", s.path, err)
		return []cartdom.LineItem{}
	}

	items := make([]cartdom.LineItem, 0, len(recs))
	for _, r := range recs {
		price, err := decimal.NewFromString(r.Price.String())
		if err != nil {
			log.Printf("[cart_store] WARN: dropping mirror entry id=%s: bad price %q", r.ID, r.Price)
			continue
		}
		items = append(items, cartdom.LineItem{
			ProductID: r.ID,
			Title:     r.Title,
			UnitPrice: price,
			Quantity:  r.Quantity,
			Image:     r.Image,
		})
	}
	return items
}

func (s *CartStore) Save(items []cartdom.LineItem) {
	recs := make([]lineItemRec, 0, len(items))
	for _, it := range items {
		recs = append(recs, lineItemRec{
			ID:       it.ProductID,
			Title:    it.Title,
			Price:    json.Number(it.UnitPrice.String()),
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}

	raw, err := json.Marshal(recs)
	if err != nil {
		log.Printf("[cart_store] WARN: encode cart mirror failed: %v", err)
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("[cart_store] WARN: create mirror dir %s failed: %v", dir, err)
			return
		}
	}

	// temp + rename so readers never observe a partial write
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		log.Printf("[cart_store] WARN: write cart mirror failed: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("[cart_store] WARN: replace cart mirror failed: %v", err)
	}
}
