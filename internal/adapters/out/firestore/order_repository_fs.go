// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/apperr"
	orderdom "storefront/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Wire contract (field-exact):
//
//	{userId, items:[{productId,title,price:number,quantity:int,image}],
//	 total:number, status, returnReason?, createdAt/updatedAt: ISO-8601}
//
// Every remote failure except NotFound is normalized into the structured
// remote-failure variant here, before it reaches the engines.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, orderDocFromDomain(o)); err != nil {
		return orderdom.Order{}, apperr.Remote("failed to create order", err)
	}

	o.ID = doc.ID
	return o, nil
}

func (r *OrderRepositoryFS) UpdateStatus(ctx context.Context, id string, st orderdom.Status, returnReason string, updatedAt time.Time) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.ErrNotFound
	}

	updates := []firestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "updatedAt", Value: updatedAt.UTC().Format(time.RFC3339)},
	}
	if strings.TrimSpace(returnReason) != "" {
		updates = append(updates, firestore.Update{Path: "returnReason", Value: strings.TrimSpace(returnReason)})
	}

	if _, err := r.col().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.ErrNotFound
		}
		return apperr.Remote("failed to update order", err)
	}
	return nil
}

func (r *OrderRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.ErrNotFound
	}

	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.ErrNotFound
		}
		return apperr.Remote("failed to delete order", err)
	}
	return nil
}

func (r *OrderRepositoryFS) ListByUser(ctx context.Context, userID string, limit int) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return []orderdom.Order{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	q := r.col().
		Where("userId", "==", uid).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	it := q.Documents(ctx)
	defer it.Stop()

	out := make([]orderdom.Order, 0, limit)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Remote("failed to fetch orders", err)
		}
		out = append(out, orderFromSnapshot(snap))
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderItemDoc struct {
	ProductID string  `firestore:"productId"`
	Title     string  `firestore:"title"`
	Price     float64 `firestore:"price"`
	Quantity  int     `firestore:"quantity"`
	Image     string  `firestore:"image"`
}

type orderDoc struct {
	UserID       string         `firestore:"userId"`
	Items        []orderItemDoc `firestore:"items"`
	Total        float64        `firestore:"total"`
	Status       string         `firestore:"status"`
	ReturnReason string         `firestore:"returnReason,omitempty"`
	CreatedAt    string         `firestore:"createdAt"`
	UpdatedAt    string         `firestore:"updatedAt"`
}

func orderDocFromDomain(o orderdom.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price.InexactFloat64(),
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return orderDoc{
		UserID:       o.UserID,
		Items:        items,
		Total:        o.Total.InexactFloat64(),
		Status:       string(o.Status),
		ReturnReason: o.ReturnReason,
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// orderFromSnapshot parses the document tolerantly via snap.Data() so a
// schema drift (number vs string, timestamp vs ISO string) cannot turn a
// listing into a 500.
func orderFromSnapshot(snap *firestore.DocumentSnapshot) orderdom.Order {
	raw := snap.Data()
	if raw == nil {
		return orderdom.Order{ID: snap.Ref.ID}
	}

	o := orderdom.Order{
		ID:           snap.Ref.ID,
		UserID:       strings.TrimSpace(asString(raw["userId"])),
		Total:        decimal.NewFromFloat(asFloat(raw["total"])),
		Status:       orderdom.Status(strings.TrimSpace(asString(raw["status"]))),
		ReturnReason: strings.TrimSpace(asString(raw["returnReason"])),
	}
	if !o.Status.Valid() {
		o.Status = orderdom.StatusPending
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		o.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		o.UpdatedAt = t
	}

	itemsAny, _ := raw["items"].([]any)
	for _, v := range itemsAny {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		qty := asInt(m["quantity"])
		if qty < 1 {
			continue
		}
		o.Items = append(o.Items, orderdom.ItemSnapshot{
			ProductID: strings.TrimSpace(asString(m["productId"])),
			Title:     strings.TrimSpace(asString(m["title"])),
			Price:     decimal.NewFromFloat(asFloat(m["price"])),
			Quantity:  qty,
			Image:     strings.TrimSpace(asString(m["image"])),
		})
	}
	return o
}
