// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/apperr"
	productdom "storefront/internal/domain/product"
)

// ProductRepositoryFS implements product.Repository using Firestore
// (collection: products).
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) List(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Remote("failed to fetch products", err)
		}
		out = append(out, productFromSnapshot(snap))
	}
	return out, nil
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, apperr.Remote("failed to fetch product", err)
	}
	return productFromSnapshot(snap), nil
}

// FindByTitle returns (nil, nil) when no product carries the title.
func (r *ProductRepositoryFS) FindByTitle(ctx context.Context, title string) (*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	it := r.col().Where("title", "==", strings.TrimSpace(title)).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Remote("failed to look up product title", err)
	}

	p := productFromSnapshot(snap)
	return &p, nil
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, productDocFromDomain(p)); err != nil {
		return productdom.Product{}, apperr.Remote("failed to add product", err)
	}

	p.ID = doc.ID
	return p, nil
}

func (r *ProductRepositoryFS) Update(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(p.ID)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	if _, err := r.col().Doc(id).Set(ctx, productDocFromDomain(p), firestore.MergeAll); err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, apperr.Remote("failed to edit product", err)
	}

	// read back the stored result (edit flow returns the fresh doc)
	return r.GetByID(ctx, id)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type productDoc struct {
	Title       string         `firestore:"title"`
	Price       string         `firestore:"price"`
	Category    string         `firestore:"category"`
	Image       string         `firestore:"image,omitempty"`
	Description string         `firestore:"description,omitempty"`
	Quantity    int            `firestore:"quantity"`
	AddedBy     map[string]any `firestore:"addedBy"`
	CreatedAt   string         `firestore:"createdAt"`
	UpdatedAt   string         `firestore:"updatedAt"`
}

func productDocFromDomain(p productdom.Product) productDoc {
	return productDoc{
		Title:       p.Title,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
		Quantity:    p.Quantity,
		AddedBy: map[string]any{
			"uid":   p.AddedBy.UID,
			"email": p.AddedBy.Email,
		},
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// productFromSnapshot parses tolerantly: price may be stored as a string
// or a number depending on which client wrote the doc.
func productFromSnapshot(snap *firestore.DocumentSnapshot) productdom.Product {
	raw := snap.Data()
	if raw == nil {
		return productdom.Product{ID: snap.Ref.ID}
	}

	p := productdom.Product{
		ID:          snap.Ref.ID,
		Title:       strings.TrimSpace(asString(raw["title"])),
		Price:       strings.TrimSpace(asString(raw["price"])),
		Category:    strings.TrimSpace(asString(raw["category"])),
		Image:       strings.TrimSpace(asString(raw["image"])),
		Description: strings.TrimSpace(asString(raw["description"])),
		Quantity:    asInt(raw["quantity"]),
	}
	if m, ok := raw["addedBy"].(map[string]any); ok {
		p.AddedBy = productdom.AddedBy{
			UID:   strings.TrimSpace(asString(m["uid"])),
			Email: strings.TrimSpace(asString(m["email"])),
		}
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		p.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		p.UpdatedAt = t
	}
	return p
}
